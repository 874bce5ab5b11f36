package repository

import (
	"context"
	"fmt"

	"delivery-guides-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderRepository reads the orders reference table. Orders are owned
// elsewhere; Create exists for seeding only.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns every order, newest first.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	if o.Status == "" {
		o.Status = models.OrderPending
	}
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// SeedOrders inserts a few sample orders when the table is empty and returns
// how many were written.
func SeedOrders(ctx context.Context, orders *OrderRepository) (int, error) {
	n, err := orders.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	email := func(s string) *string { return &s }
	samples := []models.Order{
		{CustomerName: "Ana Gómez", CustomerEmail: email("ana@example.com"), TotalAmount: decimal.RequireFromString("149.90"), Status: models.OrderConfirmed},
		{CustomerName: "Luis Pérez", CustomerEmail: email("luis@example.com"), TotalAmount: decimal.RequireFromString("59.00"), Status: models.OrderShipped},
		{CustomerName: "Marta Ruiz", TotalAmount: decimal.RequireFromString("230.45"), Status: models.OrderPending},
	}
	for i := range samples {
		if err := orders.Create(ctx, &samples[i]); err != nil {
			return i, err
		}
	}
	return len(samples), nil
}

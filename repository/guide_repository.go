package repository

import (
	"context"
	"errors"
	"fmt"

	"delivery-guides-api/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// GuideRepository runs parameterized statements against delivery_guides and receipts.
type GuideRepository struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) *GuideRepository {
	return &GuideRepository{db: db}
}

// List returns every guide, newest first.
func (r *GuideRepository) List(ctx context.Context) ([]models.DeliveryGuide, error) {
	guides := []models.DeliveryGuide{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&guides).Error; err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	return guides, nil
}

func (r *GuideRepository) Get(ctx context.Context, id uint) (*models.DeliveryGuide, error) {
	var g models.DeliveryGuide
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get guide %d: %w", id, err)
	}
	return &g, nil
}

// Create inserts g and stores the generated id on it.
func (r *GuideRepository) Create(ctx context.Context, g *models.DeliveryGuide) error {
	if g.Status == "" {
		g.Status = models.GuidePending
	}
	g.ID = 0
	if err := r.db.WithContext(ctx).Omit("Order").Create(g).Error; err != nil {
		return fmt.Errorf("create guide: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the guide with id. The receipt
// reference is left alone. Concurrent updates are not detected; the last one wins.
func (r *GuideRepository) Update(ctx context.Context, id uint, g *models.DeliveryGuide) error {
	status := g.Status
	if status == "" {
		status = models.GuidePending
	}
	res := r.db.WithContext(ctx).Model(&models.DeliveryGuide{}).Where("id = ?", id).Updates(map[string]interface{}{
		"order_id":       g.OrderID,
		"customer_name":  g.CustomerName,
		"customer_email": g.CustomerEmail,
		"customer_phone": g.CustomerPhone,
		"address":        g.Address,
		"city":           g.City,
		"postal_code":    g.PostalCode,
		"delivery_date":  g.DeliveryDate,
		"delivery_time":  g.DeliveryTime,
		"status":         status,
		"notes":          g.Notes,
	})
	if res.Error != nil {
		return fmt.Errorf("update guide %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the guide; its receipt log rows go with it through the
// foreign key cascade.
func (r *GuideRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.DeliveryGuide{})
	if res.Error != nil {
		return fmt.Errorf("delete guide %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetReceiptPath points the guide at a newly stored receipt file.
func (r *GuideRepository) SetReceiptPath(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).Model(&models.DeliveryGuide{}).Where("id = ?", id).Update("receipt_path", name)
	if res.Error != nil {
		return fmt.Errorf("set receipt for guide %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddReceipt appends an entry to the upload log.
func (r *GuideRepository) AddReceipt(ctx context.Context, rec *models.Receipt) error {
	if err := r.db.WithContext(ctx).Omit("DeliveryGuide").Create(rec).Error; err != nil {
		return fmt.Errorf("record receipt for guide %d: %w", rec.DeliveryGuideID, err)
	}
	return nil
}

// ListReceipts returns the upload log of a guide, newest first.
func (r *GuideRepository) ListReceipts(ctx context.Context, guideID uint) ([]models.Receipt, error) {
	receipts := []models.Receipt{}
	err := r.db.WithContext(ctx).
		Where("delivery_guide_id = ?", guideID).
		Order("uploaded_at desc").Order("id desc").
		Find(&receipts).Error
	if err != nil {
		return nil, fmt.Errorf("list receipts for guide %d: %w", guideID, err)
	}
	return receipts, nil
}

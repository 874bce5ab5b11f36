package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"delivery-guides-api/middleware"
	"delivery-guides-api/models"
	"delivery-guides-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GuideStore is the persistence the guide handlers need.
type GuideStore interface {
	List(ctx context.Context) ([]models.DeliveryGuide, error)
	Get(ctx context.Context, id uint) (*models.DeliveryGuide, error)
	Create(ctx context.Context, g *models.DeliveryGuide) error
	Update(ctx context.Context, id uint, g *models.DeliveryGuide) error
	Delete(ctx context.Context, id uint) error
	SetReceiptPath(ctx context.Context, id uint, name string) error
	AddReceipt(ctx context.Context, r *models.Receipt) error
	ListReceipts(ctx context.Context, guideID uint) ([]models.Receipt, error)
}

// OrderStore lists the orders reference table.
type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
}

// Pinger reports database health.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	guides  GuideStore
	orders  OrderStore
	uploads *storage.Uploads
	db      Pinger
	log     *slog.Logger
}

func New(guides GuideStore, orders OrderStore, uploads *storage.Uploads, db Pinger, log *slog.Logger) *Handler {
	registerJSONFieldNames()
	return &Handler{guides: guides, orders: orders, uploads: uploads, db: db, log: log}
}

var fieldNamesOnce sync.Once

// registerJSONFieldNames makes validation errors report json field names.
func registerJSONFieldNames() {
	fieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// guideID parses the :id path parameter. Text that is not an id can match no
// row, so it is reported the same way as an unknown id.
func guideID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Delivery guide not found"})
}

// fail reports a database or filesystem error, echoing its raw message.
func (h *Handler) fail(c *gin.Context, err error) {
	h.logFailure(c, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// failWithDetails is fail with a fixed summary and the raw message under details.
func (h *Handler) failWithDetails(c *gin.Context, summary string, err error) {
	h.logFailure(c, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": summary, "details": err.Error()})
}

func (h *Handler) logFailure(c *gin.Context, err error) {
	_ = c.Error(err)
	h.log.Error("backend failure",
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", middleware.GetRequestID(c),
	)
}

func validationFailure(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = describeTag(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery guide", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "failed " + fe.Tag()
}

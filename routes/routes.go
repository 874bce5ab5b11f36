package routes

import (
	"log/slog"
	"net/http"

	"delivery-guides-api/handlers"
	"delivery-guides-api/middleware"
	"delivery-guides-api/storage"
	"delivery-guides-api/web"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the process middleware and every route.
func NewRouter(h *handlers.Handler, uploads *storage.Uploads, corsOrigins []string, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), gin.Recovery(), middleware.CORS(corsOrigins))
	SetupRoutes(r, h, uploads)
	return r
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler, uploads *storage.Uploads) {
	r.GET("/health", h.Health)

	// ── API ────────────────────────────────────────────────────────
	api := r.Group("/api")
	{
		api.GET("", h.Index)
		api.GET("/status-lifecycle", h.GetStatusLifecycle)

		guides := api.Group("/delivery-guides")
		guides.GET("", h.ListGuides)
		guides.POST("", h.CreateGuide)
		guides.GET("/:id", h.GetGuide)
		guides.PUT("/:id", h.UpdateGuide)
		guides.DELETE("/:id", h.DeleteGuide)
		guides.POST("/:id/upload", h.UploadReceipt)
		guides.GET("/:id/receipts", h.ListReceipts)

		api.GET("/orders", h.ListOrders)
	}

	// ── Stored receipts, public and unauthenticated ────────────────
	r.Static(uploads.URLPrefix, uploads.Dir)

	// ── Web client ─────────────────────────────────────────────────
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index())
	})
	r.StaticFS("/static", http.FS(web.Assets()))
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"delivery-guides-api/models"
	"delivery-guides-api/statemachine"

	"github.com/gin-gonic/gin"
)

const serviceName = "Delivery Guides API"

// Health pings the database
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": serviceName,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": "1.0.0",
	})
}

// Index lists the API surface
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the " + serviceName,
		"health":  "/health",
		"docs":    "/api/status-lifecycle",
		"endpoints": []string{
			"GET /api/delivery-guides",
			"GET /api/delivery-guides/:id",
			"POST /api/delivery-guides",
			"PUT /api/delivery-guides/:id",
			"DELETE /api/delivery-guides/:id",
			"POST /api/delivery-guides/:id/upload",
			"GET /api/delivery-guides/:id/receipts",
			"GET /api/orders",
		},
	})
}

// GetStatusLifecycle describes the delivery guide statuses and their usual order
func (h *Handler) GetStatusLifecycle(c *gin.Context) {
	statuses := statemachine.Statuses()
	next := make(map[string][]string, len(statuses))
	for _, s := range statuses {
		list := []string{}
		for _, n := range statemachine.ValidTransitionsFrom(s) {
			list = append(list, string(n))
		}
		next[string(s)] = list
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses":        statuses,
		"default_status":  models.GuidePending,
		"transitions":     statemachine.GetAllTransitions(),
		"next_states":     next,
		"terminal_states": statemachine.TerminalStatuses(),
		"enforced":        false,
		"description":     "Delivery guide lifecycle. Updates replace the whole record, so any status may be written.",
	})
}

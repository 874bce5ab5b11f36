package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListOrders returns the orders reference table, newest first
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

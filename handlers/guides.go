package handlers

import (
	"errors"
	"net/http"

	"delivery-guides-api/repository"
	"delivery-guides-api/storage"

	"github.com/gin-gonic/gin"
)

// ListGuides returns all delivery guides, newest first
func (h *Handler) ListGuides(c *gin.Context) {
	guides, err := h.guides.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, guides)
}

// GetGuide returns a single delivery guide
func (h *Handler) GetGuide(c *gin.Context) {
	id, ok := guideID(c)
	if !ok {
		return
	}
	guide, err := h.guides.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, guide)
}

// CreateGuide accepts JSON or a multipart form; the form may carry a receipt
// file in the "receipt" field.
func (h *Handler) CreateGuide(c *gin.Context) {
	var req GuideRequest
	if err := c.ShouldBind(&req); err != nil {
		validationFailure(c, err)
		return
	}
	guide := req.toGuide(h.log)

	// the file is written before the row is inserted
	fh, err := c.FormFile("receipt")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		h.failWithDetails(c, "Failed to read receipt", err)
		return
	}
	var stored *storage.StoredFile
	if fh != nil {
		sf, err := h.uploads.SaveFileHeader(fh)
		if err != nil {
			h.failWithDetails(c, "Failed to store receipt", err)
			return
		}
		stored = &sf
		guide.ReceiptPath = &sf.Name
	}

	if err := h.guides.Create(c.Request.Context(), guide); err != nil {
		h.failWithDetails(c, "Failed to create delivery guide", err)
		return
	}
	if stored != nil {
		h.recordReceipt(c, guide.ID, *stored)
	}

	h.log.Info("delivery guide created", "guide_id", guide.ID, "status", guide.Status)
	c.JSON(http.StatusCreated, gin.H{
		"id":          guide.ID,
		"message":     "Delivery guide created successfully",
		"receiptPath": guide.ReceiptPath,
	})
}

// UpdateGuide replaces every editable field of a guide
func (h *Handler) UpdateGuide(c *gin.Context) {
	id, ok := guideID(c)
	if !ok {
		return
	}
	var req GuideRequest
	if err := c.ShouldBind(&req); err != nil {
		validationFailure(c, err)
		return
	}

	err := h.guides.Update(c.Request.Context(), id, req.toGuide(h.log))
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		h.failWithDetails(c, "Failed to update delivery guide", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery guide updated successfully"})
}

// DeleteGuide removes a guide. Stored receipt files stay on disk.
func (h *Handler) DeleteGuide(c *gin.Context) {
	id, ok := guideID(c)
	if !ok {
		return
	}
	err := h.guides.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.log.Info("delivery guide deleted", "guide_id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Delivery guide deleted successfully"})
}

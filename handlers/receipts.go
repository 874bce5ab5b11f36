package handlers

import (
	"errors"
	"net/http"

	"delivery-guides-api/models"
	"delivery-guides-api/repository"
	"delivery-guides-api/storage"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// UploadReceipt stores the "receipt" file and points the guide at it
func (h *Handler) UploadReceipt(c *gin.Context) {
	fh, err := c.FormFile("receipt")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	id, ok := guideID(c)
	if !ok {
		return
	}

	// look the guide up first so a missing guide does not leave a stray file
	if _, err := h.guides.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c)
			return
		}
		h.fail(c, err)
		return
	}

	sf, err := h.uploads.SaveFileHeader(fh)
	if err != nil {
		h.fail(c, err)
		return
	}
	err = h.guides.SetReceiptPath(c.Request.Context(), id, sf.Name)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.recordReceipt(c, id, sf)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Receipt uploaded successfully",
		"receiptPath": sf.Name,
		"receiptUrl":  h.uploads.URLFor(sf.Name),
	})
}

// ListReceipts returns the upload log of a guide, newest first
func (h *Handler) ListReceipts(c *gin.Context) {
	id, ok := guideID(c)
	if !ok {
		return
	}
	if _, err := h.guides.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c)
			return
		}
		h.fail(c, err)
		return
	}
	receipts, err := h.guides.ListReceipts(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, receipts)
}

// recordReceipt appends to the upload log. The guide already points at the
// file, so a failure here is logged and not reported to the client.
func (h *Handler) recordReceipt(c *gin.Context, guideID uint, sf storage.StoredFile) {
	size := sf.Size
	contentType := sf.ContentType
	rec := &models.Receipt{
		DeliveryGuideID: guideID,
		FileName:        sf.OriginalName,
		FilePath:        sf.Path,
		FileType:        &contentType,
		FileSize:        &size,
	}
	if err := h.guides.AddReceipt(c.Request.Context(), rec); err != nil {
		h.log.Warn("receipt log entry not written", "guide_id", guideID, "file", sf.Name, "error", err)
		return
	}
	h.log.Info("receipt stored",
		"guide_id", guideID,
		"file", sf.Name,
		"type", sf.ContentType,
		"size", humanize.Bytes(uint64(size)),
	)
}

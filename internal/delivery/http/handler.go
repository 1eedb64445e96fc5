package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shelfscan/backend/internal/domain"
	"github.com/shelfscan/backend/internal/usecase"
)

// ProductLookup is the slice of the lookup service the handlers need.
type ProductLookup interface {
	LookupByBarcode(ctx context.Context, raw string, opts usecase.LookupOptions) *domain.ProductInfo
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	lookup ProductLookup
}

// NewHandler creates a new HTTP handler
func NewHandler(lookup ProductLookup) *Handler {
	return &Handler{lookup: lookup}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shelfscan-backend",
		"version": "1.0.0",
	})
}

// GetProduct resolves a scanned barcode into product metadata.
// GET /api/v1/products/:barcode?timeout_ms=5000
func (h *Handler) GetProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	opts := usecase.LookupOptions{}
	if raw := c.Query("timeout_ms"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "timeout_ms must be an integer"})
			return
		}
		if ms <= 0 {
			// explicit zero or negative budget expires immediately
			opts.Timeout = -1
		} else {
			opts.Timeout = time.Duration(ms) * time.Millisecond
		}
	}

	product := h.lookup.LookupByBarcode(c.Request.Context(), barcode, opts)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrProductNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

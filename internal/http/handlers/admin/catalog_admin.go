package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/http/response"
	"github.com/healthybites-next/internal/models"
	"github.com/healthybites-next/internal/service"
)

// SaveCatalogRequest replaces the storefront document. Orders and site
// config are optional; omitting them keeps what is stored.
type SaveCatalogRequest struct {
	Products   []models.Product   `json:"products"`
	Coupons    []models.Coupon    `json:"coupons"`
	Favorites  []string           `json:"favorites"`
	SiteConfig *models.SiteConfig `json:"siteConfig"`
	Orders     *[]models.Order    `json:"orders"`
}

// SaveCatalog overwrites products, coupons, favorites and site imagery in
// one write.
func (h *Handler) SaveCatalog(c *gin.Context) {
	var req SaveCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid catalog payload", err)
		return
	}
	saved, err := h.CatalogService.SaveDocument(c.Request.Context(), service.SaveDocumentInput{
		Products:   req.Products,
		Coupons:    req.Coupons,
		Favorites:  req.Favorites,
		SiteConfig: req.SiteConfig,
		Orders:     req.Orders,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCatalogPayload) {
			respondError(c, response.CodeBadRequest, err.Error(), nil)
			return
		}
		respondError(c, response.CodeInternal, "catalog save failed", err)
		return
	}
	response.Success(c, gin.H{
		"products":  len(saved.Products),
		"coupons":   len(saved.Coupons),
		"favorites": len(saved.Favorites),
		"orders":    len(saved.Orders),
	})
}

// GetDocument returns the full stored document, orders included.
func (h *Handler) GetDocument(c *gin.Context) {
	doc, err := h.CatalogService.Document(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "document unavailable", err)
		return
	}
	response.Success(c, doc)
}

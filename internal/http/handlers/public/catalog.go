package public

import (
	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/http/response"
	"github.com/healthybites-next/internal/models"
)

// GetCatalog returns the storefront half of the document: products,
// favorites and site imagery. Orders stay behind the admin surface.
func (h *Handler) GetCatalog(c *gin.Context) {
	doc, err := h.CatalogService.Document(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "catalog unavailable", err)
		return
	}
	response.Success(c, gin.H{
		"products":   doc.Products,
		"favorites":  doc.Favorites,
		"siteConfig": doc.SiteConfig,
		"categories": models.Categories,
	})
}

// GetCoupons lists the currently active coupons.
func (h *Handler) GetCoupons(c *gin.Context) {
	coupons, err := h.CatalogService.Coupons(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "coupons unavailable", err)
		return
	}
	active := make([]models.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		if coupon.Active {
			active = append(active, coupon)
		}
	}
	response.Success(c, gin.H{"coupons": active})
}

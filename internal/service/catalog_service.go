package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthybites-next/internal/constants"
	"github.com/healthybites-next/internal/logger"
	"github.com/healthybites-next/internal/models"
	"github.com/healthybites-next/internal/store"
)

type CatalogService struct {
	store store.Store
}

func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// Document returns the full store document.
func (s *CatalogService) Document(ctx context.Context) (*models.Document, error) {
	return s.store.ReadAll(ctx)
}

func (s *CatalogService) Coupons(ctx context.Context) ([]models.Coupon, error) {
	doc, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Coupons, nil
}

// FindProduct resolves a product and, when weight is non-empty, one of
// its variants.
func (s *CatalogService) FindProduct(ctx context.Context, productID, weight string) (*models.Product, *models.ProductVariant, error) {
	doc, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	for i := range doc.Products {
		if doc.Products[i].ID != productID {
			continue
		}
		product := doc.Products[i]
		if strings.TrimSpace(weight) == "" {
			return &product, nil, nil
		}
		variant := product.VariantByWeight(weight)
		if variant == nil {
			return nil, nil, fmt.Errorf("%w: %s/%s", ErrVariantNotFound, productID, weight)
		}
		return &product, variant, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
}

// SaveDocumentInput is the admin replacement payload. Orders and site
// config are optional; omitting them preserves what is stored.
type SaveDocumentInput struct {
	Products   []models.Product
	Coupons    []models.Coupon
	Favorites  []string
	SiteConfig *models.SiteConfig
	Orders     *[]models.Order
}

func validateProducts(products []models.Product) error {
	if products == nil {
		return fmt.Errorf("%w: products must be an array", ErrInvalidCatalogPayload)
	}
	seen := make(map[string]struct{}, len(products))
	for i := range products {
		p := &products[i]
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("%w: product at index %d has no id", ErrInvalidCatalogPayload, i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate product id %q", ErrInvalidCatalogPayload, p.ID)
		}
		seen[p.ID] = struct{}{}
		weights := make(map[string]struct{}, len(p.Variants))
		for j := range p.Variants {
			w := p.Variants[j].Weight
			if _, dup := weights[w]; dup {
				return fmt.Errorf("%w: product %q has duplicate variant weight %q", ErrInvalidCatalogPayload, p.ID, w)
			}
			weights[w] = struct{}{}
		}
	}
	return nil
}

func validateCoupons(coupons []models.Coupon) error {
	for i := range coupons {
		c := &coupons[i]
		if strings.TrimSpace(c.Code) == "" {
			return fmt.Errorf("%w: coupon at index %d has no code", ErrInvalidCatalogPayload, i)
		}
		if c.DiscountType != constants.DiscountTypePercentage && c.DiscountType != constants.DiscountTypeFixed {
			return fmt.Errorf("%w: coupon %q has unknown discount type %q", ErrInvalidCatalogPayload, c.Code, c.DiscountType)
		}
		if c.Scope.Kind == "" {
			return fmt.Errorf("%w: coupon %q has no applicability", ErrInvalidCatalogPayload, c.Code)
		}
	}
	return nil
}

// SaveDocument replaces the catalog half of the document. Orders are kept
// untouched unless the payload explicitly includes them.
func (s *CatalogService) SaveDocument(ctx context.Context, input SaveDocumentInput) (*models.Document, error) {
	if err := validateProducts(input.Products); err != nil {
		return nil, err
	}
	if err := validateCoupons(input.Coupons); err != nil {
		return nil, err
	}

	current, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	next := &models.Document{
		Products:  input.Products,
		Coupons:   input.Coupons,
		Favorites: input.Favorites,
		Orders:    current.Orders,
	}
	if next.Coupons == nil {
		next.Coupons = []models.Coupon{}
	}
	if next.Favorites == nil {
		next.Favorites = []string{}
	}
	if input.SiteConfig != nil {
		next.SiteConfig = *input.SiteConfig
	} else {
		next.SiteConfig = current.SiteConfig
	}
	if input.Orders != nil {
		next.Orders = *input.Orders
	}

	if err := s.store.WriteAll(ctx, next); err != nil {
		return nil, err
	}
	logger.Infow("catalog_saved",
		"products", len(next.Products),
		"coupons", len(next.Coupons),
		"orders", len(next.Orders),
	)
	return next, nil
}

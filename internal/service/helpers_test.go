package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/healthybites-next/internal/models"
	"github.com/healthybites-next/internal/queue"
)

func queueDisabled() (*queue.Client, error) {
	return queue.NewClient(nil)
}

// memStore is an in-memory document store for tests.
type memStore struct {
	doc      *models.Document
	readErr  error
	writeErr error
	writes   int
}

func newMemStore(doc *models.Document) *memStore {
	if doc == nil {
		doc = &models.Document{}
	}
	return &memStore{doc: doc}
}

func (m *memStore) ReadAll(_ context.Context) (*models.Document, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	copied := *m.doc
	return &copied, nil
}

func (m *memStore) WriteAll(_ context.Context, doc *models.Document) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	if doc == nil {
		return errors.New("nil document")
	}
	m.writes++
	copied := *doc
	m.doc = &copied
	return nil
}

func money(value float64) models.Money {
	return models.NewMoneyFromFloat(value)
}

func dec(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

func testProduct(id string, basePrice float64, category string) models.Product {
	return models.Product{
		ID:        id,
		Name:      "Test " + id,
		BasePrice: money(basePrice),
		Category:  category,
	}
}

func testVariantProduct(id string, category string, variants ...models.ProductVariant) models.Product {
	p := testProduct(id, 0, category)
	if len(variants) > 0 {
		p.BasePrice = variants[0].Price
		p.DefaultWeight = variants[0].Weight
	}
	p.Variants = variants
	return p
}

func variant(weight string, price float64) models.ProductVariant {
	return models.ProductVariant{Weight: weight, Price: money(price)}
}

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/healthybites-next/internal/constants"
	"github.com/healthybites-next/internal/models"
)

func TestFileStoreReadAllMissingFileFallsBack(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "app-data.json"))
	doc, err := s.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if doc == nil || len(doc.Products) == 0 {
		t.Fatalf("expected initial data fallback, got: %+v", doc)
	}
	if len(doc.Coupons) == 0 || doc.Coupons[0].Code != "SAVE10" {
		t.Fatalf("expected seeded coupon, got: %+v", doc.Coupons)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "app-data.json"))
	ctx := context.Background()

	doc := InitialDocument()
	doc.Orders = []models.Order{
		{
			ID:     "AB12CD34",
			Date:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Status: constants.OrderStatusPending,
			Customer: models.Customer{
				FirstName: "Asha",
				LastName:  "Rao",
				Mobile:    "9876543210",
			},
			Items: []models.OrderItem{
				{ProductID: "sathumava", Name: "Sathumava", Price: models.NewMoneyFromFloat(300), Quantity: 2, Weight: "200g"},
			},
			Subtotal: models.NewMoneyFromFloat(600),
			Discount: models.NewMoneyFromFloat(0),
			Shipping: models.NewMoneyFromFloat(150),
			Total:    models.NewMoneyFromFloat(750),
		},
	}
	if err := s.WriteAll(ctx, doc); err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}

	got, err := s.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if len(got.Orders) != 1 || got.Orders[0].ID != "AB12CD34" {
		t.Fatalf("unexpected orders after round trip: %+v", got.Orders)
	}
	if got.Orders[0].Status != constants.OrderStatusPending {
		t.Fatalf("unexpected status: %s", got.Orders[0].Status)
	}
	if !got.Orders[0].Total.Decimal.Equal(doc.Orders[0].Total.Decimal) {
		t.Fatalf("total changed across round trip: %s", got.Orders[0].Total)
	}
	if len(got.Products) != len(doc.Products) {
		t.Fatalf("expected %d products, got %d", len(doc.Products), len(got.Products))
	}
}

func TestFileStoreReadAllCorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app-data.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := writeRaw(path, []byte("{not json")); err != nil {
		t.Fatalf("write corrupt file failed: %v", err)
	}
	doc, err := s.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if len(doc.Products) == 0 {
		t.Fatalf("expected fallback to initial data")
	}
}

func writeRaw(path string, content []byte) error {
	return os.WriteFile(path, content, 0o644)
}

func TestInitialDocumentReturnsFreshCopies(t *testing.T) {
	a := InitialDocument()
	b := InitialDocument()
	a.Products[0].Name = "mutated"
	if b.Products[0].Name == "mutated" {
		t.Fatalf("initial document copies share product state")
	}
	a.Coupons[0].Active = false
	if !b.Coupons[0].Active {
		t.Fatalf("initial document copies share coupon state")
	}
}

package models

import "strings"

// Categories is the fixed set of catalog categories.
var Categories = []string{
	"Baby's First Food",
	"Porridge Menu",
	"Dosa Premix Menu",
	"Pancake Premix Menu",
	"Laddus",
	"Healthy Fats / Butters",
	"Nuts and Seeds",
	"Healthy Flours",
}

// AgeGroups is the fixed set of suitable-age labels.
var AgeGroups = []string{"6m+", "8m+", "12m+", "18m+"}

// ProductVariant is an alternate weight/price packaging of a product.
// Weight strings are unique within a product's variant list.
type ProductVariant struct {
	Weight string `json:"weight"`
	Price  Money  `json:"price"`
}

// Product is a catalog entry. ID is globally unique and immutable once
// created. A product without variants is priced at BasePrice for
// DefaultWeight; otherwise the selected variant carries the price.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	BasePrice     Money            `json:"price"`
	Image         string           `json:"image"`
	Category      string           `json:"category"`
	Ingredients   []string         `json:"ingredients"`
	AgeGroup      string           `json:"ageGroup"`
	DefaultWeight string           `json:"weight,omitempty"`
	Variants      []ProductVariant `json:"variants,omitempty"`
	IsFavorite    bool             `json:"isFavorite,omitempty"`
}

// VariantByWeight returns the variant for a weight string, or nil.
func (p *Product) VariantByWeight(weight string) *ProductVariant {
	weight = strings.TrimSpace(weight)
	for i := range p.Variants {
		if p.Variants[i].Weight == weight {
			return &p.Variants[i]
		}
	}
	return nil
}

// IsKnownCategory reports whether name is one of the fixed categories.
func IsKnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

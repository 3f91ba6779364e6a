package store

import (
	"github.com/healthybites-next/internal/constants"
	"github.com/healthybites-next/internal/models"
)

// InitialDocument returns a fresh copy of the seed catalog used when no
// persisted document exists yet.
func InitialDocument() *models.Document {
	return &models.Document{
		Products: []models.Product{
			{
				ID:          "rice-cereal",
				Name:        "Rice Cereal",
				Description: "A perfect first food. Easy to digest and packed with nutrition.",
				BasePrice:   models.NewMoneyFromFloat(400),
				Image:       "/images/products/rice-cereal.jpeg",
				Category:    "Baby's First Food",
				Ingredients: []string{
					"Soaked brown rice",
					"Moong Dal",
					"Masoor Dal",
					"Urad Dal",
					"Chana Dal",
					"Toor Dal",
					"Ajwain Jeera",
				},
				AgeGroup:      "6m+",
				DefaultWeight: "200g",
				Variants: []models.ProductVariant{
					{Weight: "200g", Price: models.NewMoneyFromFloat(400)},
					{Weight: "400g", Price: models.NewMoneyFromFloat(750)},
				},
			},
			{
				ID:          "sathumava",
				Name:        "Sathumava",
				Description: "Traditional health mix powder.",
				BasePrice:   models.NewMoneyFromFloat(300),
				Image:       "/images/products/sathumava.png",
				Category:    "Baby's First Food",
				Ingredients: []string{
					"Sprouted Ragi",
					"Sprouted Wheat",
					"Sprouted Jowar",
					"Sprouted Moong",
					"Soaked and popped Amarnath",
					"Soaked Rice",
					"Soaked Almond Flour",
				},
				AgeGroup:      "6m+",
				DefaultWeight: "200g",
				Variants: []models.ProductVariant{
					{Weight: "200g", Price: models.NewMoneyFromFloat(300)},
					{Weight: "400g", Price: models.NewMoneyFromFloat(500)},
				},
			},
			{
				ID:          "sprouted-ragi-almond-cashew",
				Name:        "Sprouted Ragi, Almond & Cashew Porridge",
				Description: "Nutrient-dense sprouted ragi porridge fortified with nuts.",
				BasePrice:   models.NewMoneyFromFloat(400),
				Image:       "/images/products/ragi-porridge.jpeg",
				Category:    "Porridge Menu",
				Ingredients: []string{
					"Sprouted Ragi",
					"Flour",
					"Oats",
					"Soaked Almonds",
					"Soaked Cashew",
				},
				AgeGroup:      "8m+",
				DefaultWeight: "200g",
				Variants: []models.ProductVariant{
					{Weight: "200g", Price: models.NewMoneyFromFloat(400)},
					{Weight: "400g", Price: models.NewMoneyFromFloat(750)},
				},
			},
			{
				ID:          "oats-walnut-cashew",
				Name:        "Oats, Walnut & Cashew Porridge",
				Description: "Creamy oats porridge derived from soaked nuts.",
				BasePrice:   models.NewMoneyFromFloat(450),
				Image:       "/images/products/oats-porridge.jpeg",
				Category:    "Porridge Menu",
				Ingredients: []string{
					"Oats",
					"Soaked Walnut",
					"Dates Powder",
					"Soaked Cashew",
				},
				AgeGroup:      "8m+",
				DefaultWeight: "200g",
				Variants: []models.ProductVariant{
					{Weight: "200g", Price: models.NewMoneyFromFloat(450)},
					{Weight: "400g", Price: models.NewMoneyFromFloat(800)},
				},
			},
		},
		Coupons: []models.Coupon{
			{
				Code:          "SAVE10",
				DiscountType:  constants.DiscountTypePercentage,
				DiscountValue: models.NewMoneyFromFloat(10),
				Scope:         models.ScopeForProduct("sathumava"),
				Active:        true,
			},
		},
		Favorites: []string{"rice-cereal", "sathumava"},
		SiteConfig: models.SiteConfig{
			HeroImage:    "/images/hero-baby.png",
			StoryImage:   "/images/products-hero.png",
			FounderImage: "/images/founder.jpeg",
		},
		Orders: []models.Order{},
	}
}

package models

// SiteConfig holds the storefront's editable page images.
type SiteConfig struct {
	HeroImage    string `json:"heroImage"`
	StoryImage   string `json:"storyImage"`
	FounderImage string `json:"founderImage"`
}

// Document is the whole catalog data set, persisted as one versioned blob.
// The store contract is read-all / write-all; callers read-modify-write the
// full document.
type Document struct {
	Products   []Product  `json:"products"`
	Coupons    []Coupon   `json:"coupons"`
	Favorites  []string   `json:"favorites"`
	SiteConfig SiteConfig `json:"siteConfig"`
	Orders     []Order    `json:"orders"`
}

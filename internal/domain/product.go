package domain

// Product is immutable reference data owned by the catalog. Only the seed
// and import processes write it; everything else reads.
type Product struct {
	ID            int64  `json:"id"`
	SKU           string `json:"sku"`
	NameEN        string `json:"nameEn"`
	NameAR        string `json:"nameAr"`
	PriceCents    int64  `json:"priceCents"`
	Image         string `json:"image"`
	CategoryEN    string `json:"categoryEn,omitempty"`
	CategoryAR    string `json:"categoryAr,omitempty"`
	BadgeEN       string `json:"badgeEn,omitempty"`
	BadgeAR       string `json:"badgeAr,omitempty"`
	DescriptionEN string `json:"descriptionEn,omitempty"`
	DescriptionAR string `json:"descriptionAr,omitempty"`
}

package catalog

// StatusAll disables every inclusion filter on the product listing.
const StatusAll = "all"

// StatusAvailableOnly is the implied default reported back in filter metadata.
const StatusAvailableOnly = "available_only"

// Options are the caller-supplied listing knobs.
type Options struct {
	// Limit truncates the filtered list when > 0.
	Limit int
	// Status is "all" to bypass filtering, empty otherwise.
	Status string
	// IncludeDrafts keeps draft products in the default listing.
	IncludeDrafts bool
}

// ProjectedVariant is a purchasable variant with positive inventory.
type ProjectedVariant struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Price        string `json:"price"`
	Stock        int    `json:"stock"`
	SKU          string `json:"sku"`
	CheckoutLink string `json:"checkout_link"`
}

// ProjectedProduct is the storefront-facing product shape.
type ProjectedProduct struct {
	ID                    int64              `json:"id"`
	Title                 string             `json:"title"`
	Handle                string             `json:"handle"`
	ImageURL              *string            `json:"image_url"`
	Status                string             `json:"status"`
	IsPublished           bool               `json:"is_published"`
	IsAvailable           bool               `json:"is_available"`
	TotalStock            int                `json:"total_stock"`
	AvailableVariantCount int                `json:"available_variant_count"`
	CheckoutURL           *string            `json:"checkout_url"`
	DefaultVariant        *ProjectedVariant  `json:"default_variant"`
	Variants              []ProjectedVariant `json:"variants"`
}

// Projection is the filtered, truncated view plus its metadata counts.
type Projection struct {
	Items          []ProjectedProduct
	TotalReturned  int
	TotalAvailable int
}

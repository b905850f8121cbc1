package shopify

// Product mirrors the Admin API products.json record, reduced to the fields
// the bridge consumes.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Handle      string    `json:"handle"`
	Status      string    `json:"status"`
	PublishedAt *string   `json:"published_at"`
	Image       *Image    `json:"image"`
	Variants    []Variant `json:"variants"`
}

type Image struct {
	Src string `json:"src"`
}

type Variant struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Price             string `json:"price"`
	InventoryQuantity *int   `json:"inventory_quantity"`
	SKU               string `json:"sku"`
}

// Stock returns the variant inventory, treating an absent count as zero.
func (v Variant) Stock() int {
	if v.InventoryQuantity == nil {
		return 0
	}
	return *v.InventoryQuantity
}

const (
	StatusActive = "active"
	StatusDraft  = "draft"
)

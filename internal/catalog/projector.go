package catalog

import (
	"fmt"

	"github.com/simplytrees/bacqyard-bridge/pkg/shopify"
)

// Projector reshapes raw catalog products into the storefront view. It is a
// pure transformation; the store domain is only needed to synthesize cart
// links.
type Projector struct {
	storeDomain string
}

func NewProjector(storeDomain string) *Projector {
	return &Projector{storeDomain: storeDomain}
}

// Project transforms, filters and truncates the raw catalog. Filtering runs
// on already-transformed records so every inclusion decision sees the derived
// availability fields.
func (p *Projector) Project(raw []shopify.Product, opts Options) Projection {
	items := make([]ProjectedProduct, 0, len(raw))
	for _, product := range raw {
		projected := p.transform(product)
		if !include(projected, opts) {
			continue
		}
		items = append(items, projected)
	}

	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}

	available := 0
	for _, item := range items {
		if item.IsAvailable {
			available++
		}
	}

	return Projection{
		Items:          items,
		TotalReturned:  len(items),
		TotalAvailable: available,
	}
}

func (p *Projector) transform(product shopify.Product) ProjectedProduct {
	totalStock := 0
	variants := make([]ProjectedVariant, 0, len(product.Variants))
	for _, variant := range product.Variants {
		stock := variant.Stock()
		if stock <= 0 {
			continue
		}
		totalStock += stock
		variants = append(variants, ProjectedVariant{
			ID:           variant.ID,
			Title:        variant.Title,
			Price:        variant.Price,
			Stock:        stock,
			SKU:          variant.SKU,
			CheckoutLink: p.checkoutLink(variant.ID),
		})
	}

	projected := ProjectedProduct{
		ID:                    product.ID,
		Title:                 product.Title,
		Handle:                product.Handle,
		Status:                product.Status,
		IsPublished:           product.PublishedAt != nil,
		IsAvailable:           totalStock > 0 && len(variants) > 0,
		TotalStock:            totalStock,
		AvailableVariantCount: len(variants),
		Variants:              variants,
	}

	if product.Image != nil {
		src := product.Image.Src
		projected.ImageURL = &src
	}

	if len(variants) > 0 {
		defaultVariant := variants[0]
		projected.DefaultVariant = &defaultVariant
		checkout := defaultVariant.CheckoutLink
		projected.CheckoutURL = &checkout
	}

	return projected
}

// include applies the listing filter. Precedence matters: status=all wins
// over everything, then draft exclusion, then publish state, then stock.
func include(p ProjectedProduct, opts Options) bool {
	if opts.Status == StatusAll {
		return true
	}
	if p.Status == shopify.StatusDraft && !opts.IncludeDrafts {
		return false
	}
	if !p.IsPublished {
		return false
	}
	if !p.IsAvailable || p.AvailableVariantCount == 0 {
		return false
	}
	if p.DefaultVariant == nil {
		return false
	}
	return true
}

func (p *Projector) checkoutLink(variantID int64) string {
	return fmt.Sprintf("https://%s/cart/%d:1", p.storeDomain, variantID)
}

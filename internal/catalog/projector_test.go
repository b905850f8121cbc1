package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplytrees/bacqyard-bridge/pkg/shopify"
)

const testDomain = "simply-trees.myshopify.com"

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func activeProduct() shopify.Product {
	return shopify.Product{
		ID:          1,
		Title:       "Meyer Lemon Tree",
		Handle:      "meyer-lemon",
		Status:      shopify.StatusActive,
		PublishedAt: strPtr("2024-01-01T00:00:00Z"),
		Image:       &shopify.Image{Src: "https://cdn.example/lemon.jpg"},
		Variants: []shopify.Variant{
			{ID: 10, Title: "3 Gallon", Price: "15.00", InventoryQuantity: intPtr(0), SKU: "LEM-3"},
			{ID: 11, Title: "5 Gallon", Price: "20.00", InventoryQuantity: intPtr(5), SKU: "LEM-5"},
		},
	}
}

func TestProject_TransformInvariants(t *testing.T) {
	projector := NewProjector(testDomain)

	result := projector.Project([]shopify.Product{activeProduct()}, Options{})
	require.Len(t, result.Items, 1)
	p := result.Items[0]

	assert.Equal(t, 5, p.TotalStock)
	assert.Equal(t, 1, p.AvailableVariantCount)
	assert.True(t, p.IsAvailable)
	assert.True(t, p.IsPublished)

	require.NotNil(t, p.DefaultVariant)
	assert.Equal(t, int64(11), p.DefaultVariant.ID, "default variant is first with positive stock")

	require.Len(t, p.Variants, 1, "zero-stock variant excluded")
	assert.Equal(t, int64(11), p.Variants[0].ID)
	assert.Equal(t, "https://simply-trees.myshopify.com/cart/11:1", p.Variants[0].CheckoutLink)

	require.NotNil(t, p.CheckoutURL)
	assert.Equal(t, p.DefaultVariant.CheckoutLink, *p.CheckoutURL)

	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "https://cdn.example/lemon.jpg", *p.ImageURL)
}

func TestProject_MissingInventoryAndImage(t *testing.T) {
	projector := NewProjector(testDomain)
	product := shopify.Product{
		ID:          2,
		Title:       "Mystery Shrub",
		Status:      shopify.StatusActive,
		PublishedAt: strPtr("2024-02-02T00:00:00Z"),
		Variants: []shopify.Variant{
			{ID: 20, Title: "Default", Price: "9.00", SKU: "SHRUB"},
		},
	}

	result := projector.Project([]shopify.Product{product}, Options{Status: StatusAll})
	require.Len(t, result.Items, 1)
	p := result.Items[0]

	assert.Equal(t, 0, p.TotalStock, "absent inventory_quantity counts as zero")
	assert.False(t, p.IsAvailable)
	assert.Nil(t, p.ImageURL)
	assert.Nil(t, p.DefaultVariant)
	assert.Nil(t, p.CheckoutURL, "checkout url absent without default variant")
	assert.Empty(t, p.Variants)
}

func TestProject_DefaultFilterExcludesOutOfStock(t *testing.T) {
	projector := NewProjector(testDomain)
	soldOut := activeProduct()
	soldOut.ID = 3
	soldOut.Variants = []shopify.Variant{
		{ID: 30, Title: "Sold Out", Price: "5.00", InventoryQuantity: intPtr(0)},
	}

	result := projector.Project([]shopify.Product{activeProduct(), soldOut}, Options{})
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Items[0].ID)
	assert.Equal(t, 1, result.TotalReturned)
	assert.Equal(t, 1, result.TotalAvailable)
}

func TestProject_UnpublishedExcluded(t *testing.T) {
	projector := NewProjector(testDomain)
	unpublished := activeProduct()
	unpublished.PublishedAt = nil

	result := projector.Project([]shopify.Product{unpublished}, Options{})
	assert.Empty(t, result.Items)
}

func TestProject_DraftHandling(t *testing.T) {
	projector := NewProjector(testDomain)
	draft := activeProduct()
	draft.Status = shopify.StatusDraft

	defaultView := projector.Project([]shopify.Product{draft}, Options{})
	assert.Empty(t, defaultView.Items, "draft excluded from the default listing")

	withDrafts := projector.Project([]shopify.Product{draft}, Options{IncludeDrafts: true})
	require.Len(t, withDrafts.Items, 1)
	assert.Equal(t, shopify.StatusDraft, withDrafts.Items[0].Status)
}

func TestProject_StatusAllBypassesEverything(t *testing.T) {
	projector := NewProjector(testDomain)

	draft := activeProduct()
	draft.ID = 2
	draft.Status = shopify.StatusDraft
	unpublished := activeProduct()
	unpublished.ID = 3
	unpublished.PublishedAt = nil
	soldOut := activeProduct()
	soldOut.ID = 4
	soldOut.Variants = []shopify.Variant{{ID: 40, InventoryQuantity: intPtr(0)}}

	result := projector.Project([]shopify.Product{activeProduct(), draft, unpublished, soldOut}, Options{Status: StatusAll})
	assert.Equal(t, 4, result.TotalReturned)
	assert.Equal(t, 3, result.TotalAvailable, "sold-out product is returned but not counted available")
}

func TestProject_LimitPreservesOrder(t *testing.T) {
	projector := NewProjector(testDomain)

	products := make([]shopify.Product, 0, 5)
	for i := int64(1); i <= 5; i++ {
		p := activeProduct()
		p.ID = i
		products = append(products, p)
	}

	result := projector.Project(products, Options{Limit: 3})
	require.Len(t, result.Items, 3)
	for i, item := range result.Items {
		assert.Equal(t, int64(i+1), item.ID)
	}
	assert.Equal(t, 3, result.TotalReturned)

	generous := projector.Project(products, Options{Limit: 50})
	assert.Len(t, generous.Items, 5, "limit larger than the list is a no-op")
}

func TestProject_FilterIsIdempotent(t *testing.T) {
	projector := NewProjector(testDomain)
	once := projector.Project([]shopify.Product{activeProduct()}, Options{})
	require.Len(t, once.Items, 1)

	// Re-running the inclusion filter on an already-consistent record
	// changes nothing.
	assert.True(t, include(once.Items[0], Options{}))
}

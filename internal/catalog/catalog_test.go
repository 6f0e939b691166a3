package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductIDsAndSlugsAreUnique(t *testing.T) {
	ids := map[string]bool{}
	slugs := map[string]bool{}
	for _, p := range Products {
		assert.False(t, ids[p.ID], "duplicate product id %s", p.ID)
		assert.False(t, slugs[p.Slug], "duplicate product slug %s", p.Slug)
		ids[p.ID] = true
		slugs[p.Slug] = true

		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.PriceINR, 0.0)
		assert.Greater(t, p.PriceUSD, 0.0)
	}
}

func TestProductLookups(t *testing.T) {
	p, ok := ProductByID("prod-002")
	require.True(t, ok)
	assert.Equal(t, "Whey Protein Isolate 1kg", p.Name)
	assert.Equal(t, 2499.0, p.PriceINR)

	p, ok = ProductBySlug("resistance-band-set")
	require.True(t, ok)
	assert.Equal(t, "prod-003", p.ID)

	_, ok = ProductByID("prod-999")
	assert.False(t, ok)
	_, ok = ProductBySlug("no-such-product")
	assert.False(t, ok)
}

func TestProductsByCategory(t *testing.T) {
	supplements := ProductsByCategory(CategorySupplements)
	require.NotEmpty(t, supplements)
	for _, p := range supplements {
		assert.Equal(t, CategorySupplements, p.Category)
	}

	assert.Empty(t, ProductsByCategory(Category("vehicles")))
}

func TestPlanLookup(t *testing.T) {
	plan, ok := PlanByID("premium")
	require.True(t, ok)
	assert.Equal(t, 799.0, plan.MonthlyPriceINR)

	_, ok = PlanByID("platinum")
	assert.False(t, ok)
}

func TestPlansMatchTierNames(t *testing.T) {
	require.Len(t, Plans, 3)
	assert.Equal(t, "free", Plans[0].ID)
	assert.Equal(t, "premium", Plans[1].ID)
	assert.Equal(t, "unlimited", Plans[2].ID)
	assert.Zero(t, Plans[0].MonthlyPriceINR)
}

func TestAnnualPricing(t *testing.T) {
	premium, ok := PlanByID("premium")
	require.True(t, ok)
	// 799 × 12 × 0.8 = 7670.4 → 7670
	assert.Equal(t, 7670.0, AnnualPriceINR(premium))

	unlimited, ok := PlanByID("unlimited")
	require.True(t, ok)
	// 1299 × 12 × 0.8 = 12470.4 → 12470
	assert.Equal(t, 12470.0, AnnualPriceINR(unlimited))

	assert.InDelta(t, 95.90, AnnualPriceUSD(premium), 0.001)

	free, _ := PlanByID("free")
	assert.Zero(t, AnnualPriceINR(free))
}

package catalog

import "math"

// Category is the closed set of shop product categories.
type Category string

const (
	CategoryEquipment   Category = "equipment"
	CategorySupplements Category = "supplements"
	CategoryApparel     Category = "apparel"
	CategoryAccessories Category = "accessories"
)

// Product is a shop catalog entry. The catalog is static and never mutated
// at runtime; prices are kept in both currencies with INR as primary.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceINR    float64  `json:"price_inr"`
	PriceUSD    float64  `json:"price_usd"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Slug        string   `json:"slug"`
}

// Plan is a subscription offering. Plan IDs double as tier identifiers.
type Plan struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MonthlyPriceINR float64  `json:"monthly_price_inr"`
	MonthlyPriceUSD float64  `json:"monthly_price_usd"`
	Features        []string `json:"features"`
	CTATarget       string   `json:"cta_target"`
}

// annualDiscountFactor is applied on top of twelve monthly charges when a
// plan is billed annually.
const annualDiscountFactor = 0.8

func ProductByID(id string) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func ProductBySlug(slug string) (Product, bool) {
	for _, p := range Products {
		if p.Slug == slug {
			return p, true
		}
	}
	return Product{}, false
}

func ProductsByCategory(c Category) []Product {
	var out []Product
	for _, p := range Products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func PlanByID(id string) (Plan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// AnnualPriceINR is the yearly charge for a plan: twelve monthly payments
// with a 20% discount, rounded to the nearest rupee.
func AnnualPriceINR(p Plan) float64 {
	return math.Round(p.MonthlyPriceINR * 12 * annualDiscountFactor)
}

// AnnualPriceUSD mirrors AnnualPriceINR but keeps cents, rounding to two
// decimal places.
func AnnualPriceUSD(p Plan) float64 {
	return math.Round(p.MonthlyPriceUSD*12*annualDiscountFactor*100) / 100
}

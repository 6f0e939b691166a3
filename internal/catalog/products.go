package catalog

// Products is the static shop catalog.
var Products = []Product{
	{
		ID:          "prod-001",
		Name:        "Adjustable Dumbbell Set",
		Description: "Pair of adjustable dumbbells, 2.5kg to 24kg per hand, with quick-change dial.",
		PriceINR:    12999,
		PriceUSD:    155.99,
		Image:       "/images/products/adjustable-dumbbells.jpg",
		Category:    CategoryEquipment,
		Slug:        "adjustable-dumbbell-set",
	},
	{
		ID:          "prod-002",
		Name:        "Whey Protein Isolate 1kg",
		Description: "27g protein per serving, chocolate flavour, third-party lab tested.",
		PriceINR:    2499,
		PriceUSD:    29.99,
		Image:       "/images/products/whey-isolate.jpg",
		Category:    CategorySupplements,
		Slug:        "whey-protein-isolate-1kg",
	},
	{
		ID:          "prod-003",
		Name:        "Resistance Band Set",
		Description: "Five loop bands from extra-light to extra-heavy with carry pouch.",
		PriceINR:    999,
		PriceUSD:    11.99,
		Image:       "/images/products/resistance-bands.jpg",
		Category:    CategoryEquipment,
		Slug:        "resistance-band-set",
	},
	{
		ID:          "prod-004",
		Name:        "Pro Yoga Mat 6mm",
		Description: "Non-slip TPE mat with alignment lines and carry strap.",
		PriceINR:    1499,
		PriceUSD:    17.99,
		Image:       "/images/products/yoga-mat.jpg",
		Category:    CategoryEquipment,
		Slug:        "pro-yoga-mat-6mm",
	},
	{
		ID:          "prod-005",
		Name:        "Creatine Monohydrate 250g",
		Description: "Micronized creatine monohydrate, unflavoured, 83 servings.",
		PriceINR:    899,
		PriceUSD:    10.99,
		Image:       "/images/products/creatine.jpg",
		Category:    CategorySupplements,
		Slug:        "creatine-monohydrate-250g",
	},
	{
		ID:          "prod-006",
		Name:        "Training T-Shirt",
		Description: "Moisture-wicking training tee, relaxed athletic fit.",
		PriceINR:    799,
		PriceUSD:    9.99,
		Image:       "/images/products/training-tshirt.jpg",
		Category:    CategoryApparel,
		Slug:        "training-t-shirt",
	},
	{
		ID:          "prod-007",
		Name:        "Lifting Straps",
		Description: "Cotton lifting straps with neoprene wrist padding, sold as a pair.",
		PriceINR:    499,
		PriceUSD:    5.99,
		Image:       "/images/products/lifting-straps.jpg",
		Category:    CategoryAccessories,
		Slug:        "lifting-straps",
	},
	{
		ID:          "prod-008",
		Name:        "Shaker Bottle 700ml",
		Description: "Leak-proof shaker with mixing ball and supplement compartment.",
		PriceINR:    399,
		PriceUSD:    4.99,
		Image:       "/images/products/shaker-bottle.jpg",
		Category:    CategoryAccessories,
		Slug:        "shaker-bottle-700ml",
	},
	{
		ID:          "prod-009",
		Name:        "Kettlebell 12kg",
		Description: "Cast-iron kettlebell with flat base and powder-coat grip.",
		PriceINR:    2199,
		PriceUSD:    26.99,
		Image:       "/images/products/kettlebell-12kg.jpg",
		Category:    CategoryEquipment,
		Slug:        "kettlebell-12kg",
	},
	{
		ID:          "prod-010",
		Name:        "Foam Roller",
		Description: "High-density EVA foam roller for recovery and mobility work.",
		PriceINR:    1099,
		PriceUSD:    12.99,
		Image:       "/images/products/foam-roller.jpg",
		Category:    CategoryAccessories,
		Slug:        "foam-roller",
	},
}

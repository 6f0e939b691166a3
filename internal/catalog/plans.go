package catalog

// Plans is the static subscription catalog. Plan IDs match the subscription
// tier names used by the entitlement engine.
var Plans = []Plan{
	{
		ID:              "free",
		Name:            "Free",
		MonthlyPriceINR: 0,
		MonthlyPriceUSD: 0,
		Features: []string{
			"AI workout plan generator",
			"Shop access",
			"Basic progress dashboard",
		},
		CTATarget: "/signup",
	},
	{
		ID:              "premium",
		Name:            "Premium",
		MonthlyPriceINR: 799,
		MonthlyPriceUSD: 9.99,
		Features: []string{
			"Everything in Free",
			"AI nutrition plan generator",
			"Form analysis from video frames",
			"Body measurement tracking",
		},
		CTATarget: "/subscribe/premium",
	},
	{
		ID:              "unlimited",
		Name:            "Unlimited",
		MonthlyPriceINR: 1299,
		MonthlyPriceUSD: 15.99,
		Features: []string{
			"Everything in Premium",
			"Unlimited AI coach chat",
			"Progress photo timeline",
			"Priority support",
		},
		CTATarget: "/subscribe/unlimited",
	},
}

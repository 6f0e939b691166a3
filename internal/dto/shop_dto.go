package dto

import "github.com/fitmantra/fitmantra-backend/internal/cart"

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse mirrors what the cart views render: the lines in insertion
// order plus the derived count and total.
type CartResponse struct {
	Items     []cart.LineItem `json:"items"`
	ItemCount int             `json:"item_count"`
	TotalINR  float64         `json:"total_inr"`
}

// ValidationErrorResponse carries per-field messages for inline display.
type ValidationErrorResponse struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// RedirectResponse tells the client to route elsewhere with a notice, used
// for the empty-cart checkout precondition.
type RedirectResponse struct {
	Error    bool   `json:"error"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type SubscribeRequest struct {
	PlanID       string `json:"plan_id"`
	BillingCycle string `json:"billing_cycle"`
}

// LockedResponse is the upsell payload returned when a gated feature is not
// available on the user's tier.
type LockedResponse struct {
	Error   bool   `json:"error"`
	Locked  bool   `json:"locked"`
	Feature string `json:"feature"`
	Message string `json:"message"`
	Upgrade string `json:"upgrade"`
}

type FeatureAccessResponse struct {
	Feature    string `json:"feature"`
	Tier       string `json:"tier"`
	Accessible bool   `json:"accessible"`
}

type SubscriptionStatusResponse struct {
	Tier string `json:"tier"`
}

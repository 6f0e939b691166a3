package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fitmantra/fitmantra-backend/internal/cart"
	"github.com/fitmantra/fitmantra-backend/internal/catalog"
	"github.com/fitmantra/fitmantra-backend/internal/entitlement"
	"github.com/fitmantra/fitmantra-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrEmptyCart signals the empty-cart precondition failure; the handler
// turns it into a redirect back to the cart view, not a blocking error.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError carries the per-field error map for inline display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout validation failed: %d field(s)", len(e.Fields))
}

// BillingCycle selects how a subscription plan is charged.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

// CheckoutForm is the transient shop-checkout submission.
type CheckoutForm struct {
	Shipping ShippingDetails `json:"shipping"`
	Payment  PaymentInput    `json:"payment"`
}

// OrderItem is one snapshotted cart line on a confirmed order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	PriceINR float64 `json:"price_inr"`
}

// OrderConfirmation is handed to the confirmation view after checkout.
type OrderConfirmation struct {
	OrderRef  string      `json:"order_ref"`
	TotalINR  float64     `json:"total_inr"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// SubscriptionConfirmation is the subscription-checkout counterpart.
type SubscriptionConfirmation struct {
	PlanID       string       `json:"plan_id"`
	PlanName     string       `json:"plan_name"`
	BillingCycle BillingCycle `json:"billing_cycle"`
	AmountINR    float64      `json:"amount_inr"`
}

// Recorder persists the terminal checkout records.
type Recorder interface {
	RecordOrder(order *models.Order) error
	RecordSubscription(sub *models.Subscription) error
}

// GormRecorder writes orders and subscriptions to Postgres.
type GormRecorder struct {
	db *gorm.DB
}

func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) RecordOrder(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *GormRecorder) RecordSubscription(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

// Service drives both checkout flows. Payment is simulated locally: no
// gateway is called, the terminal transition is an order or subscription
// record plus the corresponding state change.
type Service struct {
	recorder     Recorder
	carts        *cart.Service
	entitlements *entitlement.Service
}

func NewService(recorder Recorder, carts *cart.Service, entitlements *entitlement.Service) *Service {
	return &Service{recorder: recorder, carts: carts, entitlements: entitlements}
}

// PlaceOrder validates the form against the user's cart and, on success,
// writes the order record and clears the cart.
func (s *Service) PlaceOrder(userID uuid.UUID, form CheckoutForm) (*OrderConfirmation, error) {
	c := s.carts.Load(userID.String())
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	fields := form.Shipping.Validate()
	payment, parseErrs := ParsePayment(form.Payment)
	if parseErrs != nil {
		for k, v := range parseErrs {
			fields[k] = v
		}
	} else {
		for k, v := range payment.Validate() {
			fields[k] = v
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	items := make([]OrderItem, 0, len(c.Items()))
	for _, line := range c.Items() {
		items = append(items, OrderItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			PriceINR: line.PriceINR,
		})
	}
	total := c.TotalINR()

	snapshot, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ID:            uuid.New(),
		OrderRef:      newOrderRef(),
		UserID:        userID,
		TotalINR:      total,
		PaymentMethod: string(payment.Method()),
		ShippingName:  form.Shipping.Name,
		ShippingCity:  form.Shipping.City,
		Items:         datatypes.JSON(snapshot),
	}
	if err := s.recorder.RecordOrder(&order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if err := s.carts.Clear(userID.String()); err != nil {
		slog.Error("failed to clear cart after checkout", "user_id", userID, "error", err)
	}

	slog.Info("order placed", "user_id", userID, "order_ref", order.OrderRef, "total_inr", total)

	return &OrderConfirmation{
		OrderRef:  order.OrderRef,
		TotalINR:  total,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}, nil
}

// Subscribe validates the payment section, charges the plan price for the
// chosen billing cycle (simulated), activates the tier through the
// entitlement engine, and records the purchase.
func (s *Service) Subscribe(userID uuid.UUID, planID string, cycle BillingCycle, input PaymentInput) (*SubscriptionConfirmation, error) {
	plan, ok := catalog.PlanByID(planID)
	if !ok {
		return nil, &ValidationError{Fields: map[string]string{"plan_id": "Unknown plan"}}
	}
	if plan.MonthlyPriceINR == 0 {
		return nil, &ValidationError{Fields: map[string]string{"plan_id": "The free plan cannot be purchased"}}
	}

	var amount float64
	switch cycle {
	case BillingMonthly:
		amount = plan.MonthlyPriceINR
	case BillingAnnual:
		amount = catalog.AnnualPriceINR(plan)
	default:
		return nil, &ValidationError{Fields: map[string]string{"billing_cycle": "Select monthly or annual billing"}}
	}

	payment, parseErrs := ParsePayment(input)
	if parseErrs != nil {
		return nil, &ValidationError{Fields: parseErrs}
	}
	if fields := payment.Validate(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.entitlements.SetTier(userID.String(), entitlement.Tier(plan.ID)); err != nil {
		return nil, fmt.Errorf("failed to activate subscription tier: %w", err)
	}

	sub := models.Subscription{
		ID:            uuid.New(),
		UserID:        userID,
		PlanID:        plan.ID,
		BillingCycle:  string(cycle),
		AmountINR:     amount,
		PaymentMethod: string(payment.Method()),
		Status:        "active",
	}
	if err := s.recorder.RecordSubscription(&sub); err != nil {
		return nil, fmt.Errorf("failed to record subscription: %w", err)
	}

	slog.Info("subscription activated", "user_id", userID, "plan", plan.ID, "cycle", cycle, "amount_inr", amount)

	return &SubscriptionConfirmation{
		PlanID:       plan.ID,
		PlanName:     plan.Name,
		BillingCycle: cycle,
		AmountINR:    amount,
	}, nil
}

func newOrderRef() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ORD-" + id[:10]
}

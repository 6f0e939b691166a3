package checkout

import (
	"encoding/json"
	"testing"

	"github.com/fitmantra/fitmantra-backend/internal/cart"
	"github.com/fitmantra/fitmantra-backend/internal/catalog"
	"github.com/fitmantra/fitmantra-backend/internal/entitlement"
	"github.com/fitmantra/fitmantra-backend/internal/models"
	"github.com/fitmantra/fitmantra-backend/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRecorder struct {
	orders        []models.Order
	subscriptions []models.Subscription
}

func (r *memoryRecorder) RecordOrder(order *models.Order) error {
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memoryRecorder) RecordSubscription(sub *models.Subscription) error {
	r.subscriptions = append(r.subscriptions, *sub)
	return nil
}

type fixture struct {
	svc          *Service
	carts        *cart.Service
	entitlements *entitlement.Service
	recorder     *memoryRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.NewMemoryStore()
	carts := cart.NewService(st)
	entitlements := entitlement.NewService(st, entitlement.DefaultRegistry())
	recorder := &memoryRecorder{}
	return &fixture{
		svc:          NewService(recorder, carts, entitlements),
		carts:        carts,
		entitlements: entitlements,
		recorder:     recorder,
	}
}

func validForm() CheckoutForm {
	return CheckoutForm{
		Shipping: validShipping(),
		Payment:  validCardInput(),
	}
}

func mustProduct(t *testing.T, id string) catalog.Product {
	t.Helper()
	p, ok := catalog.ProductByID(id)
	require.True(t, ok)
	return p
}

func TestPlaceOrderEmptyCartRedirects(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	_, err := f.svc.PlaceOrder(userID, validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, f.recorder.orders, "payment processing must not be reached")
}

func TestPlaceOrderValidationFailureKeepsCart(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	_, err := f.carts.AddItem(userID.String(), mustProduct(t, "prod-002"))
	require.NoError(t, err)

	form := validForm()
	form.Payment.CardNumber = "411111111111111" // 15 digits

	_, err = f.svc.PlaceOrder(userID, form)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "card_number")

	assert.Empty(t, f.recorder.orders)
	assert.False(t, f.carts.Load(userID.String()).IsEmpty(), "cart survives a failed checkout")
}

func TestPlaceOrderCombinesShippingAndPaymentErrors(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	_, err := f.carts.AddItem(userID.String(), mustProduct(t, "prod-003"))
	require.NoError(t, err)

	form := validForm()
	form.Shipping.PostalCode = "12"
	form.Payment.CVV = "9"

	_, err = f.svc.PlaceOrder(userID, form)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "postal_code")
	assert.Contains(t, vErr.Fields, "cvv")
}

func TestPlaceOrderSuccess(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	whey := mustProduct(t, "prod-002")  // 2499
	bands := mustProduct(t, "prod-003") // 999
	_, err := f.carts.AddItem(userID.String(), whey)
	require.NoError(t, err)
	_, err = f.carts.UpdateQuantity(userID.String(), whey.ID, 3)
	require.NoError(t, err)
	_, err = f.carts.AddItem(userID.String(), bands)
	require.NoError(t, err)

	confirmation, err := f.svc.PlaceOrder(userID, validForm())
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-[0-9A-F]{10}$`, confirmation.OrderRef)
	assert.InDelta(t, 8496, confirmation.TotalINR, 0.001)
	require.Len(t, confirmation.Items, 2)
	assert.Equal(t, whey.Name, confirmation.Items[0].Name)
	assert.Equal(t, 3, confirmation.Items[0].Quantity)

	// order recorded with the snapshot
	require.Len(t, f.recorder.orders, 1)
	order := f.recorder.orders[0]
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, "card", order.PaymentMethod)
	var snapshot []OrderItem
	require.NoError(t, json.Unmarshal(order.Items, &snapshot))
	assert.Len(t, snapshot, 2)

	// cart cleared; subsequent total reads zero
	c := f.carts.Load(userID.String())
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.TotalINR())
}

func TestPlaceOrderWithUPIIgnoresStaleCardFields(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	_, err := f.carts.AddItem(userID.String(), mustProduct(t, "prod-003"))
	require.NoError(t, err)

	form := validForm()
	form.Payment = PaymentInput{
		Method:     "upi",
		UPIID:      "rahul@okhdfc",
		CardNumber: "bad",
		CVV:        "x",
	}

	confirmation, err := f.svc.PlaceOrder(userID, form)
	require.NoError(t, err)
	assert.InDelta(t, 999, confirmation.TotalINR, 0.001)
	assert.Equal(t, "upi", f.recorder.orders[0].PaymentMethod)
}

func TestSubscribeMonthly(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	confirmation, err := f.svc.Subscribe(userID, "premium", BillingMonthly, validCardInput())
	require.NoError(t, err)

	assert.Equal(t, "premium", confirmation.PlanID)
	assert.InDelta(t, 799, confirmation.AmountINR, 0.001)
	assert.Equal(t, entitlement.TierPremium, f.entitlements.Tier(userID.String()))

	require.Len(t, f.recorder.subscriptions, 1)
	assert.Equal(t, "monthly", f.recorder.subscriptions[0].BillingCycle)
	assert.Equal(t, "active", f.recorder.subscriptions[0].Status)
}

func TestSubscribeAnnualAppliesDiscount(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	confirmation, err := f.svc.Subscribe(userID, "premium", BillingAnnual, validCardInput())
	require.NoError(t, err)

	// 799 × 12 × 0.8 = 7670.4, rounded to 7670
	assert.InDelta(t, 7670, confirmation.AmountINR, 0.001)
	assert.Equal(t, entitlement.TierPremium, f.entitlements.Tier(userID.String()))
}

func TestSubscribeUnlimitedUnlocksChat(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	assert.False(t, f.entitlements.IsFeatureAccessible(userID.String(), entitlement.FeatureCoachChat))

	_, err := f.svc.Subscribe(userID, "unlimited", BillingMonthly,
		PaymentInput{Method: "upi", UPIID: "rahul@okhdfc"})
	require.NoError(t, err)

	assert.True(t, f.entitlements.IsFeatureAccessible(userID.String(), entitlement.FeatureCoachChat))
}

func TestSubscribeRejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	var vErr *ValidationError

	_, err := f.svc.Subscribe(userID, "diamond", BillingMonthly, validCardInput())
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "plan_id")

	_, err = f.svc.Subscribe(userID, "free", BillingMonthly, validCardInput())
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "plan_id")

	_, err = f.svc.Subscribe(userID, "premium", BillingCycle("weekly"), validCardInput())
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "billing_cycle")

	bad := validCardInput()
	bad.ExpiryDate = "13/27"
	_, err = f.svc.Subscribe(userID, "premium", BillingMonthly, bad)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "expiry_date")

	// nothing was recorded and the tier is untouched
	assert.Empty(t, f.recorder.subscriptions)
	assert.Equal(t, entitlement.TierFree, f.entitlements.Tier(userID.String()))
}

package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCardInput() PaymentInput {
	return PaymentInput{
		Method:         "card",
		CardholderName: "Rahul Verma",
		CardNumber:     "4111111111111111",
		ExpiryDate:     "09/27",
		CVV:            "123",
	}
}

func TestParsePaymentBuildsCardVariant(t *testing.T) {
	payment, errs := ParsePayment(validCardInput())
	require.Nil(t, errs)
	require.Equal(t, PaymentCard, payment.Method())
	assert.Empty(t, payment.Validate())
}

func TestParsePaymentUnknownMethod(t *testing.T) {
	_, errs := ParsePayment(PaymentInput{Method: "crypto"})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "payment_method")
}

func TestCardValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*PaymentInput)
		badField string
	}{
		{"15-digit card number", func(in *PaymentInput) { in.CardNumber = "411111111111111" }, "card_number"},
		{"17-digit card number", func(in *PaymentInput) { in.CardNumber = "41111111111111111" }, "card_number"},
		{"non-numeric card number", func(in *PaymentInput) { in.CardNumber = "4111-1111-1111-1111" }, "card_number"},
		{"short cardholder name", func(in *PaymentInput) { in.CardholderName = "RV" }, "cardholder_name"},
		{"expiry month 13", func(in *PaymentInput) { in.ExpiryDate = "13/27" }, "expiry_date"},
		{"expiry month 00", func(in *PaymentInput) { in.ExpiryDate = "00/27" }, "expiry_date"},
		{"expiry missing slash", func(in *PaymentInput) { in.ExpiryDate = "0927" }, "expiry_date"},
		{"two-digit cvv", func(in *PaymentInput) { in.CVV = "12" }, "cvv"},
		{"five-digit cvv", func(in *PaymentInput) { in.CVV = "12345" }, "cvv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCardInput()
			tt.mutate(&in)
			payment, errs := ParsePayment(in)
			require.Nil(t, errs)
			assert.Contains(t, payment.Validate(), tt.badField)
		})
	}
}

func TestCardAcceptsFourDigitCVV(t *testing.T) {
	in := validCardInput()
	in.CVV = "1234"
	payment, errs := ParsePayment(in)
	require.Nil(t, errs)
	assert.Empty(t, payment.Validate())
}

func TestUPIValidation(t *testing.T) {
	payment, errs := ParsePayment(PaymentInput{Method: "upi", UPIID: "rahul@okhdfc"})
	require.Nil(t, errs)
	assert.Empty(t, payment.Validate())

	payment, _ = ParsePayment(PaymentInput{Method: "upi", UPIID: "ab@c"})
	assert.Contains(t, payment.Validate(), "upi_id")

	payment, _ = ParsePayment(PaymentInput{Method: "upi", UPIID: "has spaces@upi"})
	assert.Contains(t, payment.Validate(), "upi_id")
}

// Switching from card to UPI must not drag stale card fields into
// validation or the submitted payload.
func TestUPIIgnoresStaleCardFields(t *testing.T) {
	in := PaymentInput{
		Method:         "upi",
		UPIID:          "rahul@okhdfc",
		CardholderName: "Rahul Verma",
		CardNumber:     "411",
		ExpiryDate:     "99/99",
		CVV:            "1",
	}

	payment, errs := ParsePayment(in)
	require.Nil(t, errs)
	assert.Empty(t, payment.Validate())

	upi, ok := payment.(UPIPayment)
	require.True(t, ok)
	assert.Equal(t, "rahul@okhdfc", upi.UPIID)
}

func TestCardIgnoresStaleUPIField(t *testing.T) {
	in := validCardInput()
	in.UPIID = "x"

	payment, errs := ParsePayment(in)
	require.Nil(t, errs)
	assert.Empty(t, payment.Validate())

	_, ok := payment.(CardPayment)
	assert.True(t, ok)
}

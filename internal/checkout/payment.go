package checkout

import (
	"regexp"
	"strings"
)

// PaymentMethod discriminates the payment section of a checkout form.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

var (
	cardNumberRe = regexp.MustCompile(`^[0-9]{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvRe        = regexp.MustCompile(`^[0-9]{3,4}$`)
	upiIDRe      = regexp.MustCompile(`^[A-Za-z0-9._@-]+$`)
)

// PaymentInput is the flat payment section as submitted. It may carry stale
// fields from a previously selected method; ParsePayment drops those when it
// builds the tagged variant, so they are never validated or forwarded.
type PaymentInput struct {
	Method         string `json:"payment_method"`
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
	UPIID          string `json:"upi_id"`
}

// Payment is the validated-variant side of the discriminated union.
type Payment interface {
	Method() PaymentMethod
	Validate() map[string]string
}

type CardPayment struct {
	CardholderName string `json:"cardholder_name"`
	CardNumber     string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
}

func (CardPayment) Method() PaymentMethod { return PaymentCard }

func (p CardPayment) Validate() map[string]string {
	errs := make(map[string]string)
	if len(strings.TrimSpace(p.CardholderName)) < 3 {
		errs["cardholder_name"] = "Cardholder name must be at least 3 characters"
	}
	if !cardNumberRe.MatchString(p.CardNumber) {
		errs["card_number"] = "Card number must be 16 digits"
	}
	if !expiryRe.MatchString(p.ExpiryDate) {
		errs["expiry_date"] = "Expiry must be in MM/YY format"
	}
	if !cvvRe.MatchString(p.CVV) {
		errs["cvv"] = "CVV must be 3 or 4 digits"
	}
	return errs
}

type UPIPayment struct {
	UPIID string `json:"upi_id"`
}

func (UPIPayment) Method() PaymentMethod { return PaymentUPI }

func (p UPIPayment) Validate() map[string]string {
	errs := make(map[string]string)
	id := strings.TrimSpace(p.UPIID)
	if len(id) < 5 || !upiIDRe.MatchString(id) {
		errs["upi_id"] = "Enter a valid UPI ID"
	}
	return errs
}

// ParsePayment turns the flat input into the tagged variant for the selected
// method. Fields belonging to the unselected method are discarded here and
// never reach validation or the order record. An unknown method reports a
// payment_method field error.
func ParsePayment(in PaymentInput) (Payment, map[string]string) {
	switch PaymentMethod(in.Method) {
	case PaymentCard:
		return CardPayment{
			CardholderName: in.CardholderName,
			CardNumber:     in.CardNumber,
			ExpiryDate:     in.ExpiryDate,
			CVV:            in.CVV,
		}, nil
	case PaymentUPI:
		return UPIPayment{UPIID: in.UPIID}, nil
	default:
		return nil, map[string]string{"payment_method": "Select a payment method"}
	}
}

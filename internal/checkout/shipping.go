package checkout

import (
	"regexp"
	"strings"
)

var (
	postalCodeRe = regexp.MustCompile(`^[0-9]{5,6}$`)
	phoneRe      = regexp.MustCompile(`^\+?[0-9][0-9\s-]{7,14}$`)
)

// ShippingDetails are the address fields validated independently of the
// payment method.
type ShippingDetails struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// Validate returns a per-field error map; an empty map means valid.
func (s ShippingDetails) Validate() map[string]string {
	errs := make(map[string]string)

	if len(strings.TrimSpace(s.Name)) < 3 {
		errs["name"] = "Name must be at least 3 characters"
	}
	if strings.TrimSpace(s.AddressLine1) == "" {
		errs["address_line1"] = "Address is required"
	}
	if strings.TrimSpace(s.City) == "" {
		errs["city"] = "City is required"
	}
	if !postalCodeRe.MatchString(strings.TrimSpace(s.PostalCode)) {
		errs["postal_code"] = "Postal code must be 5 or 6 digits"
	}
	if !phoneRe.MatchString(strings.TrimSpace(s.Phone)) {
		errs["phone"] = "Enter a valid phone number"
	}

	return errs
}

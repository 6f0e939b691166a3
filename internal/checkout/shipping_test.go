package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validShipping() ShippingDetails {
	return ShippingDetails{
		Name:         "Rahul Verma",
		AddressLine1: "14 MG Road",
		AddressLine2: "Apt 3B",
		City:         "Bengaluru",
		PostalCode:   "560001",
		Country:      "India",
		Phone:        "+91 98765 43210",
	}
}

func TestValidShippingPasses(t *testing.T) {
	assert.Empty(t, validShipping().Validate())
}

func TestShippingValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ShippingDetails)
		badField string
	}{
		{"short name", func(s *ShippingDetails) { s.Name = "Ra" }, "name"},
		{"missing address", func(s *ShippingDetails) { s.AddressLine1 = "  " }, "address_line1"},
		{"missing city", func(s *ShippingDetails) { s.City = "" }, "city"},
		{"4-digit postal code", func(s *ShippingDetails) { s.PostalCode = "5600" }, "postal_code"},
		{"7-digit postal code", func(s *ShippingDetails) { s.PostalCode = "5600011" }, "postal_code"},
		{"alpha postal code", func(s *ShippingDetails) { s.PostalCode = "56OO01" }, "postal_code"},
		{"short phone", func(s *ShippingDetails) { s.Phone = "12345" }, "phone"},
		{"alpha phone", func(s *ShippingDetails) { s.Phone = "call me maybe" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validShipping()
			tt.mutate(&s)
			assert.Contains(t, s.Validate(), tt.badField)
		})
	}
}

func TestFiveDigitPostalCodeAccepted(t *testing.T) {
	s := validShipping()
	s.PostalCode = "10001"
	assert.Empty(t, s.Validate())
}

func TestAddressLine2IsOptional(t *testing.T) {
	s := validShipping()
	s.AddressLine2 = ""
	assert.Empty(t, s.Validate())
}

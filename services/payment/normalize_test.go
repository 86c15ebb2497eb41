package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pix-checkout-api/apperrors"
	"pix-checkout-api/models"
)

func validRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		Amount: 28.63,
		Name:   "Maria da Silva",
		Email:  "maria@example.com",
		CPF:    "123.456.789-01",
		Phone:  "(11) 98765-4321",
	}
}

func TestNormalizeStripsFormatting(t *testing.T) {
	customer, err := Normalize(validRequest())
	require.NoError(t, err)

	assert.Equal(t, "12345678901", customer.DocumentDigits)
	assert.Equal(t, "11987654321", customer.PhoneDigits)
	assert.Equal(t, models.DocumentCPF, customer.DocumentType)

	for _, r := range customer.DocumentDigits + customer.PhoneDigits {
		assert.True(t, r >= '0' && r <= '9', "expected only digits, got %q", r)
	}
}

func TestNormalizeClassifiesCNPJ(t *testing.T) {
	req := validRequest()
	req.CPF = "12.345.678/0001-99"

	customer, err := Normalize(req)
	require.NoError(t, err)

	assert.Equal(t, "12345678000199", customer.DocumentDigits)
	assert.Equal(t, models.DocumentCNPJ, customer.DocumentType)
}

func TestNormalizeRejectsEmptyFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.CheckoutRequest)
	}{
		{"empty name", func(r *models.CheckoutRequest) { r.Name = "  " }},
		{"empty email", func(r *models.CheckoutRequest) { r.Email = "" }},
		{"document without digits", func(r *models.CheckoutRequest) { r.CPF = "..-/" }},
		{"phone without digits", func(r *models.CheckoutRequest) { r.Phone = "( ) -" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := Normalize(req)
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

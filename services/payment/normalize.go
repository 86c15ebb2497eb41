package payment

import (
	"strings"

	"pix-checkout-api/apperrors"
	"pix-checkout-api/models"
)

// Normalize reduz documento e telefone a dígitos e classifica o tipo de
// documento. CNPJ tem mais de 11 dígitos; não há validação de dígito
// verificador aqui.
func Normalize(req models.CheckoutRequest) (models.NormalizedCustomer, error) {
	customer := models.NormalizedCustomer{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		DocumentDigits: digitsOnly(req.CPF),
		PhoneDigits:    digitsOnly(req.Phone),
	}

	customer.DocumentType = models.DocumentCPF
	if len(customer.DocumentDigits) > 11 {
		customer.DocumentType = models.DocumentCNPJ
	}

	switch {
	case customer.Name == "":
		return models.NormalizedCustomer{}, apperrors.NewValidationError("name is required")
	case customer.Email == "":
		return models.NormalizedCustomer{}, apperrors.NewValidationError("email is required")
	case customer.DocumentDigits == "":
		return models.NormalizedCustomer{}, apperrors.NewValidationError("document is required")
	case customer.PhoneDigits == "":
		return models.NormalizedCustomer{}, apperrors.NewValidationError("phone is required")
	}

	return customer, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

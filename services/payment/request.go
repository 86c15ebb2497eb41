package payment

import (
	"pix-checkout-api/apperrors"
	"pix-checkout-api/models"
	"pix-checkout-api/utils"
)

// ItemTitle é o único item do checkout atual.
const ItemTitle = "Pagamento taxa do empréstimo"

// BuildTransactionRequest monta o payload da GestaoPay a partir do
// cliente normalizado. Sempre um único item, com unitPrice igual ao
// total em centavos.
func BuildTransactionRequest(amount float64, customer models.NormalizedCustomer) (*models.TransactionRequest, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}

	cents := utils.ToMinorUnits(amount)

	return &models.TransactionRequest{
		Amount:        cents,
		PaymentMethod: "pix",
		Customer: models.Customer{
			Name:  customer.Name,
			Email: customer.Email,
			Document: models.Document{
				Type:   customer.DocumentType,
				Number: customer.DocumentDigits,
			},
			Phone: customer.PhoneDigits,
		},
		Items: []models.Item{
			{
				Title:     ItemTitle,
				UnitPrice: cents,
				Quantity:  1,
				Tangible:  false,
			},
		},
	}, nil
}

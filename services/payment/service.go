package payment

import (
	"context"

	"pix-checkout-api/models"
	"pix-checkout-api/services/payment/gestaopay"
)

// Gateway é o colaborador upstream que efetiva a transação.
type Gateway interface {
	ProcessTransaction(ctx context.Context, req *models.TransactionRequest) (*gestaopay.TransactionResponse, error)
}

type Service struct {
	gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// ProcessPixPayment executa o ciclo completo de uma tentativa de
// checkout: normaliza, monta o payload e chama o gateway uma única vez.
func (s *Service) ProcessPixPayment(ctx context.Context, req models.CheckoutRequest) (*gestaopay.TransactionResponse, error) {
	customer, err := Normalize(req)
	if err != nil {
		return nil, err
	}

	txRequest, err := BuildTransactionRequest(req.Amount, customer)
	if err != nil {
		return nil, err
	}

	return s.gateway.ProcessTransaction(ctx, txRequest)
}

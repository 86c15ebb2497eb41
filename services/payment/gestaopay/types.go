package gestaopay

import (
	"encoding/json"

	"pix-checkout-api/models"
)

// transactionBody é o subconjunto da resposta da GestaoPay que o relay
// interpreta. O restante do payload é repassado bruto ao cliente.
type transactionBody struct {
	ID      string             `json:"id,omitempty"`
	Status  string             `json:"status,omitempty"`
	Message string             `json:"message,omitempty"`
	Pix     *models.PixPayload `json:"pix,omitempty"`
}

// TransactionResponse é o resultado de uma transação aceita pelo
// gateway. Pix é nil quando o método de pagamento não gera QR code.
type TransactionResponse struct {
	Status     string
	Pix        *models.PixPayload
	RawPayload json.RawMessage
}

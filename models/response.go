package models

import "encoding/json"

// PixPayload é o par qrcode/expiração retornado pela GestaoPay quando a
// transação é PIX. O qrcode é o código copia-e-cola completo.
type PixPayload struct {
	QRCode         string `json:"qrcode"`
	ExpirationDate string `json:"expirationDate"`
}

// SuccessResponse é a resposta 200 do relay. Data repassa o payload
// bruto do gateway para o cliente ler data.pix quando presente.
type SuccessResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// ErrorResponse é a resposta de falha do relay. Details só é
// preenchido quando o gateway devolve detalhes da recusa.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

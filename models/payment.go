package models

// TransactionRequest é o payload enviado para a GestaoPay em
// POST /v1/transactions. Valores monetários em centavos.
type TransactionRequest struct {
	Amount        int64    `json:"amount"`
	PaymentMethod string   `json:"paymentMethod"`
	Customer      Customer `json:"customer"`
	Items         []Item   `json:"items"`
}

type Customer struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Document Document `json:"document"`
	Phone    string   `json:"phone"`
}

type Document struct {
	Type   DocumentType `json:"type"`
	Number string       `json:"number"`
}

type Item struct {
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Tangible  bool   `json:"tangible"`
}

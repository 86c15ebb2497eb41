package models

// CheckoutRequest é o corpo recebido pelo relay, exatamente como o
// formulário de checkout envia. Os campos cpf e phone chegam com
// máscara de formatação.
type CheckoutRequest struct {
	Amount float64 `json:"amount"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	CPF    string  `json:"cpf"`
	Phone  string  `json:"phone"`
}

// DocumentType distingue CPF de CNPJ pela quantidade de dígitos.
type DocumentType string

const (
	DocumentCPF  DocumentType = "cpf"
	DocumentCNPJ DocumentType = "cnpj"
)

// NormalizedCustomer é o cliente após a normalização: documento e
// telefone reduzidos a dígitos, tipo de documento classificado.
type NormalizedCustomer struct {
	Name           string
	Email          string
	DocumentType   DocumentType
	DocumentDigits string
	PhoneDigits    string
}

package apperrors

import (
	"encoding/json"
	"fmt"
)

// ValidationError indica dado de entrada ausente ou malformado. O
// cliente pode corrigir e reenviar.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConfigurationError indica credenciais ausentes. Fatal para a
// invocação; não é erro do usuário e não deve ser retentado.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// GatewayError carrega o status e a mensagem retornados pela GestaoPay
// quando a transação não é aceita. Details preserva o corpo bruto da
// resposta para repassar ao chamador.
type GatewayError struct {
	StatusCode int
	Message    string
	Details    json.RawMessage
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Message)
}

package gestaopay

import (
	"encoding/base64"
	"fmt"

	"pix-checkout-api/apperrors"
)

// BasicCredential monta o valor do header Authorization a partir do par
// de chaves da GestaoPay. O valor retornado não deve ser logado.
func BasicCredential(publicKey, secretKey string) (string, error) {
	if publicKey == "" || secretKey == "" {
		return "", &apperrors.ConfigurationError{Message: "Chaves de API não configuradas"}
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", publicKey, secretKey)))
	return "Basic " + encoded, nil
}

package utils

import (
	"encoding/json"
	"net/http"

	"pix-checkout-api/models"
)

func SendErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}

// SendGatewayErrorResponse repassa a recusa do gateway com o status
// original e o corpo bruto em details.
func SendGatewayErrorResponse(w http.ResponseWriter, status int, message string, details json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message, Details: details})
}

func SendSuccessResponse(w http.ResponseWriter, data json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SuccessResponse{Success: true, Data: data})
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pix-checkout-api/apperrors"
	"pix-checkout-api/diagnostics"
	"pix-checkout-api/metrics"
	"pix-checkout-api/models"
	"pix-checkout-api/services/payment"
	"pix-checkout-api/utils"
)

type PaymentHandler struct {
	paymentService *payment.Service
	recorder       *diagnostics.Recorder
}

func NewPaymentHandler(ps *payment.Service, recorder *diagnostics.Recorder) (*PaymentHandler, error) {
	if ps == nil {
		return nil, fmt.Errorf("payment service is required")
	}

	return &PaymentHandler{
		paymentService: ps,
		recorder:       recorder,
	}, nil
}

// ProcessPayment é a fronteira do relay: valida presença dos campos,
// delega ao serviço de pagamento e traduz cada classe de erro para o
// status correspondente. Uma única chamada ao gateway por invocação.
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	start := time.Now()

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[RequestID: %s] Invalid request body: %v", requestID, err)
		metrics.IncRequest("invalid_input")
		utils.SendErrorResponse(w, http.StatusBadRequest, "Dados incompletos")
		return
	}

	// Validação básica antes de qualquer chamada externa
	if req.Amount == 0 || req.Name == "" || req.Email == "" || req.CPF == "" || req.Phone == "" {
		log.Printf("[RequestID: %s] Missing required checkout fields", requestID)
		metrics.IncRequest("invalid_input")
		utils.SendErrorResponse(w, http.StatusBadRequest, "Dados incompletos")
		return
	}

	log.Printf("[RequestID: %s] Processing PIX payment of %.2f for %s", requestID, req.Amount, req.Email)

	result, err := h.paymentService.ProcessPixPayment(r.Context(), req)
	if err != nil {
		h.handleError(w, requestID, req, err, start)
		return
	}

	if result.Pix != nil {
		log.Printf("[RequestID: %s] PIX generated, expires at %s", requestID, result.Pix.ExpirationDate)
	} else {
		// Transação aceita sem QR code (outro meio de pagamento)
		log.Printf("[RequestID: %s] Transaction accepted without PIX payload", requestID)
	}

	h.recorder.Record(diagnostics.PaymentEvent{
		RequestID:   requestID,
		Outcome:     "success",
		StatusCode:  http.StatusOK,
		AmountCents: utils.ToMinorUnits(req.Amount),
	})
	metrics.IncRequest("success")
	metrics.ObserveDuration("success", time.Since(start).Seconds())

	utils.SendSuccessResponse(w, result.RawPayload)
}

func (h *PaymentHandler) handleError(w http.ResponseWriter, requestID string, req models.CheckoutRequest, err error, start time.Time) {
	var (
		validationErr    *apperrors.ValidationError
		configurationErr *apperrors.ConfigurationError
		gatewayErr       *apperrors.GatewayError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Printf("[RequestID: %s] Validation failed: %v", requestID, validationErr)
		metrics.IncRequest("invalid_input")
		utils.SendErrorResponse(w, http.StatusBadRequest, "Dados incompletos")

	case errors.As(err, &configurationErr):
		// Erro de operação, não do usuário. Não deve ser retentado.
		log.Printf("[RequestID: %s] Configuration error: %v", requestID, configurationErr)
		h.recorder.Record(diagnostics.PaymentEvent{
			RequestID:  requestID,
			Outcome:    "configuration_error",
			StatusCode: http.StatusInternalServerError,
		})
		metrics.IncRequest("configuration_error")
		utils.SendErrorResponse(w, http.StatusInternalServerError, configurationErr.Message)

	case errors.As(err, &gatewayErr):
		log.Printf("[RequestID: %s] Gateway rejected transaction: %v", requestID, gatewayErr)
		h.recorder.Record(diagnostics.PaymentEvent{
			RequestID:   requestID,
			Outcome:     "gateway_error",
			StatusCode:  gatewayErr.StatusCode,
			AmountCents: utils.ToMinorUnits(req.Amount),
			Detail:      gatewayErr.Message,
		})
		metrics.IncRequest("gateway_error")
		metrics.ObserveDuration("gateway_error", time.Since(start).Seconds())
		utils.SendGatewayErrorResponse(w, gatewayErr.StatusCode, gatewayErr.Message, gatewayErr.Details)

	default:
		// Detalhe fica no log do servidor; o chamador recebe mensagem
		// genérica.
		log.Printf("[RequestID: %s] Unexpected error: %v", requestID, err)
		h.recorder.Record(diagnostics.PaymentEvent{
			RequestID:  requestID,
			Outcome:    "unexpected_error",
			StatusCode: http.StatusInternalServerError,
		})
		metrics.IncRequest("unexpected_error")
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}

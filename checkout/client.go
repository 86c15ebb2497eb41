package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pix-checkout-api/models"
)

// Result é o desfecho normalizado de uma tentativa de checkout do ponto
// de vista do cliente. Exatamente um dos lados é preenchido: Pix (ou
// sucesso genérico sem Pix) quando Success, ErrorMessage caso
// contrário.
type Result struct {
	Success      bool
	Pix          *models.PixPayload
	ErrorMessage string
}

// Relay abstrai a chamada ao backend para a máquina de estados.
type Relay interface {
	ProcessPayment(ctx context.Context, req models.CheckoutRequest) (*Result, error)
}

// RelayClient fala com o endpoint /api/process-payment do relay.
type RelayClient struct {
	baseURL string
	client  *http.Client
}

func NewRelayClient(baseURL string) *RelayClient {
	return &RelayClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type relayResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		Pix *models.PixPayload `json:"pix"`
	} `json:"data"`
}

func (c *RelayClient) ProcessPayment(ctx context.Context, req models.CheckoutRequest) (*Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/process-payment", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call relay: %w", err)
	}
	defer resp.Body.Close()

	var body relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode relay response: %w", err)
	}

	if !body.Success {
		message := body.Error
		if message == "" {
			message = "Erro ao processar pagamento"
		}
		return &Result{Success: false, ErrorMessage: message}, nil
	}

	return &Result{Success: true, Pix: body.Data.Pix}, nil
}

package gestaopay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"pix-checkout-api/apperrors"
	"pix-checkout-api/config"
	"pix-checkout-api/models"
)

const (
	TransactionsPath = "/v1/transactions"
	RequestTimeout   = 15 * time.Second
)

type Client struct {
	baseURL    string
	credential string
	client     *http.Client
}

// NewClient constrói o cliente da GestaoPay. Falha com
// ConfigurationError quando alguma das chaves está ausente — nenhuma
// requisição é tentada nesse caso.
func NewClient(cfg config.GatewayConfig) (*Client, error) {
	credential, err := BasicCredential(cfg.PublicKey, cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		credential: credential,
		client: &http.Client{
			Timeout:   RequestTimeout,
			Transport: transport,
		},
	}, nil
}

// ProcessTransaction envia a transação para a GestaoPay e interpreta a
// resposta. Recusas (status não-2xx) viram GatewayError com o corpo
// bruto preservado em Details; não há retry.
func (c *Client) ProcessTransaction(ctx context.Context, req *models.TransactionRequest) (*TransactionResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error marshaling transaction request: %v", err)
	}

	log.Printf("Sending %s transaction to GestaoPay: amount=%d method=%s", req.Customer.Document.Type, req.Amount, req.PaymentMethod)

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+TransactionsPath, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	httpReq.Header.Set("Authorization", c.credential)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &apperrors.GatewayError{
			StatusCode: http.StatusBadGateway,
			Message:    "Erro ao processar pagamento",
			Details:    nil,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	log.Printf("GestaoPay response received in %v with status %d", time.Since(start), resp.StatusCode)

	cleanBody := strings.TrimPrefix(string(respBody), "\ufeff")

	var body transactionBody
	if err := json.Unmarshal([]byte(cleanBody), &body); err != nil {
		return nil, fmt.Errorf("error decoding response: %v, response body: %s", err, cleanBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := body.Message
		if message == "" {
			message = "Erro ao processar pagamento"
		}
		return nil, &apperrors.GatewayError{
			StatusCode: resp.StatusCode,
			Message:    message,
			Details:    json.RawMessage(cleanBody),
		}
	}

	return &TransactionResponse{
		Status:     body.Status,
		Pix:        body.Pix,
		RawPayload: json.RawMessage(cleanBody),
	}, nil
}

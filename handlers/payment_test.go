package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pix-checkout-api/apperrors"
	"pix-checkout-api/config"
	"pix-checkout-api/models"
	"pix-checkout-api/services/payment"
	"pix-checkout-api/services/payment/gestaopay"
)

// stubGateway devolve um erro fixo, para exercitar o mapeamento de
// erros na fronteira do relay.
type stubGateway struct {
	err error
}

func (g *stubGateway) ProcessTransaction(ctx context.Context, req *models.TransactionRequest) (*gestaopay.TransactionResponse, error) {
	return nil, g.err
}

func newRelayHandler(t *testing.T, upstream *httptest.Server) *PaymentHandler {
	t.Helper()

	gatewayClient, err := gestaopay.NewClient(config.GatewayConfig{
		PublicKey: "pk_test",
		SecretKey: "sk_test",
		BaseURL:   upstream.URL,
	})
	require.NoError(t, err)

	handler, err := NewPaymentHandler(payment.NewService(gatewayClient), nil)
	require.NoError(t, err)
	return handler
}

func postCheckout(t *testing.T, handler *PaymentHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/process-payment", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ProcessPayment(rec, req)
	return rec
}

const validBody = `{"amount":28.63,"name":"Maria da Silva","email":"maria@example.com","cpf":"123.456.789-01","phone":"(11) 98765-4321"}`

func TestProcessPaymentRejectsIncompleteInput(t *testing.T) {
	var upstreamCalls int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&upstreamCalls, 1)
	}))
	defer upstream.Close()

	handler := newRelayHandler(t, upstream)

	bodies := []string{
		`{"name":"Maria","email":"m@e.com","cpf":"123","phone":"11"}`,
		`{"amount":28.63,"email":"m@e.com","cpf":"123","phone":"11"}`,
		`{"amount":28.63,"name":"Maria","cpf":"123","phone":"11"}`,
		`{"amount":28.63,"name":"Maria","email":"m@e.com","phone":"11"}`,
		`{"amount":28.63,"name":"Maria","email":"m@e.com","cpf":"123"}`,
		`not json`,
	}

	for _, body := range bodies {
		rec := postCheckout(t, handler, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Dados incompletos", resp.Error)
	}

	// Nenhuma chamada ao gateway pode ter acontecido
	assert.Zero(t, atomic.LoadInt64(&upstreamCalls))
}

func TestProcessPaymentReturnsPixVerbatim(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tx models.TransactionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&tx))
		assert.Equal(t, int64(2863), tx.Amount)
		assert.Equal(t, "pix", tx.PaymentMethod)
		assert.Equal(t, "12345678901", tx.Customer.Document.Number)

		w.Write([]byte(`{"id":"tx_1","status":"waiting_payment","pix":{"qrcode":"00020126qr-completo","expirationDate":"2026-08-30T12:00:00"}}`))
	}))
	defer upstream.Close()

	handler := newRelayHandler(t, upstream)
	rec := postCheckout(t, handler, validBody)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Pix *models.PixPayload `json:"pix"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data.Pix)
	assert.Equal(t, "00020126qr-completo", resp.Data.Pix.QRCode)
	assert.Equal(t, "2026-08-30T12:00:00", resp.Data.Pix.ExpirationDate)
}

func TestProcessPaymentSuccessWithoutPix(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"tx_2","status":"approved"}`))
	}))
	defer upstream.Close()

	handler := newRelayHandler(t, upstream)
	rec := postCheckout(t, handler, validBody)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.NotContains(t, resp.Data, "pix")
}

func TestProcessPaymentPassesThroughGatewayStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Transação recusada","code":"refused"}`))
	}))
	defer upstream.Close()

	handler := newRelayHandler(t, upstream)
	rec := postCheckout(t, handler, validBody)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Transação recusada", resp.Error)
	assert.JSONEq(t, `{"message":"Transação recusada","code":"refused"}`, string(resp.Details))
}

func TestProcessPaymentConfigurationErrorIsFatal(t *testing.T) {
	service := payment.NewService(&stubGateway{
		err: &apperrors.ConfigurationError{Message: "Chaves de API não configuradas"},
	})
	handler, err := NewPaymentHandler(service, nil)
	require.NoError(t, err)

	rec := postCheckout(t, handler, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Chaves de API não configuradas", resp.Error)
}

func TestProcessPaymentHidesUnexpectedErrorDetail(t *testing.T) {
	service := payment.NewService(&stubGateway{
		err: assert.AnError,
	})
	handler, err := NewPaymentHandler(service, nil)
	require.NoError(t, err)

	rec := postCheckout(t, handler, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Erro interno do servidor", resp.Error)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestProcessPaymentValidationErrorFromNormalization(t *testing.T) {
	var upstreamCalls int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&upstreamCalls, 1)
	}))
	defer upstream.Close()

	handler := newRelayHandler(t, upstream)

	// Campos presentes mas sem nenhum dígito após a normalização
	rec := postCheckout(t, handler, `{"amount":28.63,"name":"Maria","email":"m@e.com","cpf":"..-","phone":"( ) -"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, atomic.LoadInt64(&upstreamCalls))
}

package checkout

import (
	"context"
	"errors"
	"sync"

	"pix-checkout-api/models"
)

// State é o estado da sessão de checkout do lado do cliente.
type State int

const (
	StateCollecting State = iota
	StateSubmitting
	StatePixReady
	StateGenericSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateCollecting:
		return "collecting-input"
	case StateSubmitting:
		return "submitting"
	case StatePixReady:
		return "pix-ready"
	case StateGenericSuccess:
		return "generic-success"
	case StateError:
		return "error"
	}
	return "unknown"
}

// ErrSubmissionInFlight é retornado por Submit enquanto outra submissão
// da mesma sessão ainda não recebeu resposta.
var ErrSubmissionInFlight = errors.New("submission already in flight")

const displayCodeLimit = 50

// FormData é o que o formulário coleta. CEP é coletado mas não faz
// parte do contrato com o relay.
type FormData struct {
	Name          string
	Email         string
	CPF           string
	Phone         string
	CEP           string
	PaymentMethod string
}

// PixData é o conteúdo da tela de sucesso do PIX.
type PixData struct {
	PixCode        string
	ExpirationDate string
	Amount         float64
}

// Session é a máquina de estados do checkout:
// collecting-input -> submitting -> {pix-ready | generic-success | error},
// com error voltando para collecting-input preservando o que foi
// digitado. O mutex é o único controle de concorrência: garante no
// máximo uma submissão em voo por sessão.
type Session struct {
	mu     sync.Mutex
	state  State
	amount float64
	input  FormData
	pix    *PixData
	notice string
	relay  Relay
}

func NewSession(relay Relay, amount float64) *Session {
	return &Session{
		state:  StateCollecting,
		amount: amount,
		relay:  relay,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetInput atualiza os dados em edição. Só tem efeito fora de uma
// submissão em andamento.
func (s *Session) SetInput(input FormData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCollecting || s.state == StateError {
		s.input = input
	}
}

func (s *Session) Input() FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Submit dispara a tentativa de pagamento. Uma segunda chamada enquanto
// a primeira não terminou falha com ErrSubmissionInFlight sem tocar a
// rede. CEP fica de fora do payload enviado.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if s.state != StateCollecting && s.state != StateError {
		s.mu.Unlock()
		return errors.New("session already finished")
	}
	s.state = StateSubmitting
	s.notice = ""
	req := models.CheckoutRequest{
		Amount: s.amount,
		Name:   s.input.Name,
		Email:  s.input.Email,
		CPF:    s.input.CPF,
		Phone:  s.input.Phone,
	}
	s.mu.Unlock()

	result, err := s.relay.ProcessPayment(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.fail()
		return nil
	}

	switch {
	case result.Success && result.Pix != nil:
		s.state = StatePixReady
		s.pix = &PixData{
			PixCode:        result.Pix.QRCode,
			ExpirationDate: result.Pix.ExpirationDate,
			Amount:         s.amount,
		}
	case result.Success:
		s.state = StateGenericSuccess
	default:
		s.fail()
	}

	return nil
}

// fail volta para o formulário com aviso transitório, mantendo o que o
// usuário já digitou. Chamador segura o lock.
func (s *Session) fail() {
	s.state = StateError
	s.notice = "Erro ao processar pagamento. Por favor, tente novamente."
}

// Notice é o aviso transitório da última falha.
func (s *Session) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// AcknowledgeError devolve a sessão para edição após o usuário ver o
// aviso de erro.
func (s *Session) AcknowledgeError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateError {
		s.state = StateCollecting
	}
}

// Pix retorna os dados da tela de sucesso, ou nil fora de pix-ready.
func (s *Session) Pix() *PixData {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePixReady || s.pix == nil {
		return nil
	}
	pix := *s.pix
	return &pix
}

// PixCode é o código copia-e-cola completo. É este valor que vai para a
// área de transferência, nunca o recorte exibido.
func (s *Session) PixCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pix == nil {
		return ""
	}
	return s.pix.PixCode
}

// DisplayCode é o recorte do código para exibição na tela.
func (s *Session) DisplayCode() string {
	code := s.PixCode()
	if len(code) > displayCodeLimit {
		return code[:displayCodeLimit] + "..."
	}
	return code
}

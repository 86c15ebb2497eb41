package diagnostics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	eventList  = "payment_events"
	maxEvents  = 1000
	bufferSize = 64
)

// PaymentEvent é o registro de diagnóstico de uma tentativa de
// pagamento. Nunca inclui credenciais nem o header Authorization.
type PaymentEvent struct {
	RequestID   string    `json:"request_id"`
	Outcome     string    `json:"outcome"`
	StatusCode  int       `json:"status_code"`
	AmountCents int64     `json:"amount_cents,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Recorder empurra eventos para uma lista limitada no Redis, fora do
// caminho da requisição. Um Recorder nil descarta tudo, o que mantém o
// relay funcional sem Redis configurado.
type Recorder struct {
	client *redis.Client
	events chan PaymentEvent
	done   chan struct{}
	once   sync.Once
}

func NewRecorder(redisURL string) (*Recorder, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %v", err)
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	r := &Recorder{
		client: client,
		events: make(chan PaymentEvent, bufferSize),
		done:   make(chan struct{}),
	}
	go r.run()

	return r, nil
}

// Record enfileira o evento sem bloquear o handler. Com o buffer cheio
// o evento é descartado; diagnóstico não pode atrasar o checkout.
func (r *Recorder) Record(event PaymentEvent) {
	if r == nil {
		return
	}

	event.CreatedAt = time.Now().UTC()
	select {
	case r.events <- event:
	default:
		log.Printf("Warning: diagnostics buffer full, dropping event for request %s", event.RequestID)
	}
}

func (r *Recorder) run() {
	defer close(r.done)

	for event := range r.events {
		payload, err := json.Marshal(event)
		if err != nil {
			log.Printf("Warning: failed to marshal diagnostics event: %v", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		pipe := r.client.Pipeline()
		pipe.RPush(ctx, eventList, payload)
		pipe.LTrim(ctx, eventList, -maxEvents, -1)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("Warning: failed to record diagnostics event: %v", err)
		}
		cancel()
	}
}

// Close drena os eventos pendentes e fecha a conexão.
func (r *Recorder) Close() {
	if r == nil {
		return
	}

	r.once.Do(func() {
		close(r.events)
		<-r.done
		if err := r.client.Close(); err != nil {
			log.Printf("Warning: error closing Redis connection: %v", err)
		}
	})
}

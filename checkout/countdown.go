package checkout

import (
	"fmt"
	"sync"
	"time"
)

// TickInterval é a cadência de recálculo do contador enquanto o QR code
// está visível.
const TickInterval = 60 * time.Second

const ExpiredLabel = "Expired"

// CountdownState é o estado derivado do contador. Nunca é persistido;
// vale apenas enquanto a tela do PIX existe.
type CountdownState struct {
	RemainingLabel string
	Expired        bool
}

// ParseExpiration aceita o timestamp ISO-8601 retornado pelo gateway,
// com ou sem offset de fuso.
func ParseExpiration(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

// Remaining deriva o tempo restante até a expiração. Dias, horas e
// minutos por divisão inteira, sem arredondamento.
func Remaining(expiration, now time.Time) CountdownState {
	diff := expiration.Sub(now)
	if diff <= 0 {
		return CountdownState{RemainingLabel: ExpiredLabel, Expired: true}
	}

	days := int(diff / (24 * time.Hour))
	hours := int(diff % (24 * time.Hour) / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)

	var label string
	switch {
	case days > 0:
		label = fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		label = fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		label = fmt.Sprintf("%dm", minutes)
	}

	return CountdownState{RemainingLabel: label}
}

// Countdown recalcula o estado em cadência fixa e entrega cada estado
// ao callback. Stop cancela o trabalho de forma determinística: depois
// que Stop retorna não há mais ticks.
type Countdown struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func StartCountdown(expiration time.Time, interval time.Duration, tick func(CountdownState)) *Countdown {
	c := &Countdown{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(c.done)

		// Primeiro cálculo imediato, antes do primeiro tick
		tick(Remaining(expiration, time.Now()))

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				tick(Remaining(expiration, time.Now()))
			}
		}
	}()

	return c
}

// Stop cancela o contador e espera a goroutine encerrar.
func (c *Countdown) Stop() {
	c.once.Do(func() {
		close(c.stop)
	})
	<-c.done
}

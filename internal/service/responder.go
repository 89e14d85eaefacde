package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/akash-23-k/Tech-Query/internal/llm"
)

var (
	ErrEmptyQuery         = errors.New("please enter a query")
	ErrNotAuthenticated   = errors.New("please login to use ai features")
	ErrServiceUnavailable = errors.New("ai service unavailable")
)

// ResponderState refleja el estado del responder: visible para que el
// caller deshabilite el control de envío mientras hay una consulta en vuelo.
type ResponderState int32

const (
	StateIdle ResponderState = iota
	StateSubmitting
)

// Answer es la respuesta generada, en crudo y traducida a HTML.
type Answer struct {
	Raw  string `json:"response"`
	HTML string `json:"html"`
}

// QueryResponder acepta consultas de texto libre y responde con la
// estrategia remota (si hay credencial de completions configurada) o con el
// generador local de respuestas canned.
type QueryResponder struct {
	logger   *zap.Logger
	sessions *SessionStore
	remote   llm.Client // nil => estrategia local
	delay    time.Duration
	state    atomic.Int32
}

func NewQueryResponder(logger *zap.Logger, sessions *SessionStore, remote llm.Client, delay time.Duration) *QueryResponder {
	return &QueryResponder{
		logger:   logger,
		sessions: sessions,
		remote:   remote,
		delay:    delay,
	}
}

// State devuelve el estado actual (Idle o Submitting).
func (r *QueryResponder) State() ResponderState {
	return ResponderState(r.state.Load())
}

// Submit valida la consulta, exige sesión activa y corre exactamente una de
// las dos estrategias. Vuelve siempre a Idle, con respuesta o con error.
func (r *QueryResponder) Submit(ctx context.Context, query string) (Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Answer{}, ErrEmptyQuery
	}
	if r.sessions.Active() == nil {
		return Answer{}, ErrNotAuthenticated
	}

	r.state.Store(int32(StateSubmitting))
	defer r.state.Store(int32(StateIdle))

	var (
		text string
		err  error
	)
	if r.remote != nil {
		text, err = r.remote.Generate(ctx, query)
		if err != nil {
			r.logger.Warn("remote completion failed", zap.Error(err))
			if errors.Is(err, llm.ErrUnavailable) {
				return Answer{}, ErrServiceUnavailable
			}
			return Answer{}, err
		}
	} else {
		if err := r.simulateLatency(ctx); err != nil {
			return Answer{}, err
		}
		text = localAnswer(query)
	}

	return Answer{Raw: text, HTML: FormatHTML(text)}, nil
}

func (r *QueryResponder) simulateLatency(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(r.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

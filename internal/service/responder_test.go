package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/akash-23-k/Tech-Query/internal/llm"
	"github.com/akash-23-k/Tech-Query/internal/repository"
)

func newLoggedInSessions(t *testing.T) *SessionStore {
	t.Helper()
	store := NewSessionStore(zap.NewNop(), repository.NewMemoryKV(), repository.NewMemoryKV(), nil)
	if err := store.SetActive(context.Background(), testSession(), false); err != nil {
		t.Fatalf("set active: %v", err)
	}
	return store
}

func TestResponderSubmit_EmptyQuery(t *testing.T) {
	mock := &llm.MockClient{Response: "ok"}
	r := NewQueryResponder(zap.NewNop(), newLoggedInSessions(t), mock, 0)

	for _, query := range []string{"", "   ", "\n\t "} {
		if _, err := r.Submit(context.Background(), query); !errors.Is(err, ErrEmptyQuery) {
			t.Fatalf("expected ErrEmptyQuery for %q, got %v", query, err)
		}
	}
	if mock.Calls != 0 {
		t.Fatalf("expected no strategy invoked, got %d calls", mock.Calls)
	}
}

func TestResponderSubmit_NotAuthenticated(t *testing.T) {
	mock := &llm.MockClient{Response: "ok"}
	sessions := NewSessionStore(zap.NewNop(), repository.NewMemoryKV(), repository.NewMemoryKV(), nil)
	r := NewQueryResponder(zap.NewNop(), sessions, mock, 0)

	if _, err := r.Submit(context.Background(), "help"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if mock.Calls != 0 {
		t.Fatalf("expected no strategy invoked, got %d calls", mock.Calls)
	}
}

func TestResponderSubmit_LocalKeywordMatch(t *testing.T) {
	r := NewQueryResponder(zap.NewNop(), newLoggedInSessions(t), nil, 0)

	answer, err := r.Submit(context.Background(), "How do I debug this error?")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if answer.Raw != debugHelp {
		t.Fatalf("expected debug block, got %q", answer.Raw)
	}
	if !strings.Contains(answer.HTML, "<strong>Debugging Strategy:</strong>") {
		t.Fatalf("expected formatted html, got %q", answer.HTML)
	}
}

func TestResponderSubmit_LocalKeywordOrder(t *testing.T) {
	r := NewQueryResponder(zap.NewNop(), newLoggedInSessions(t), nil, 0)

	cases := map[string]string{
		"tell me about PYTHON":      pythonHelp,
		"js frameworks?":            javascriptHelp,
		"html layout basics":        webHelp,
		"an error in my javascript": javascriptHelp, // gana el primer grupo de la lista
	}
	for query, want := range cases {
		answer, err := r.Submit(context.Background(), query)
		if err != nil {
			t.Fatalf("submit %q: %v", query, err)
		}
		if answer.Raw != want {
			t.Fatalf("unexpected block for %q", query)
		}
	}
}

func TestResponderSubmit_LocalGenericEchoesQuery(t *testing.T) {
	r := NewQueryResponder(zap.NewNop(), newLoggedInSessions(t), nil, 0)

	answer, err := r.Submit(context.Background(), "what is the weather")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(answer.Raw, `**Your query:** "what is the weather"`) {
		t.Fatalf("expected generic block echoing the query, got %q", answer.Raw)
	}
}

func TestResponderSubmit_RemoteStrategy(t *testing.T) {
	mock := &llm.MockClient{Response: "remote **answer**"}
	r := NewQueryResponder(zap.NewNop(), newLoggedInSessions(t), mock, 0)

	answer, err := r.Submit(context.Background(), "  anything  ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if mock.Calls != 1 || mock.LastQuery != "anything" {
		t.Fatalf("expected one trimmed remote call, got %d %q", mock.Calls, mock.LastQuery)
	}
	if answer.Raw != "remote **answer**" {
		t.Fatalf("unexpected raw answer %q", answer.Raw)
	}
	if answer.HTML != "<p>remote <strong>answer</strong></p>" {
		t.Fatalf("unexpected html %q", answer.HTML)
	}
}

func TestResponderSubmit_RemoteUnavailable(t *testing.T) {
	mock := &llm.MockClient{Err: fmt.Errorf("%w: status=500", llm.ErrUnavailable)}
	r := NewQueryResponder(zap.NewNop(), newLoggedInSessions(t), mock, 0)

	if _, err := r.Submit(context.Background(), "anything"); !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
	if r.State() != StateIdle {
		t.Fatalf("expected responder back in idle")
	}
}

func TestResponderState_BackToIdle(t *testing.T) {
	r := NewQueryResponder(zap.NewNop(), newLoggedInSessions(t), nil, 0)

	if r.State() != StateIdle {
		t.Fatalf("expected initial state idle")
	}
	if _, err := r.Submit(context.Background(), "python"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if r.State() != StateIdle {
		t.Fatalf("expected terminal state idle")
	}
}

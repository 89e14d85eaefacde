package service

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/akash-23-k/Tech-Query/internal/domain"
	"github.com/akash-23-k/Tech-Query/internal/repository"
)

const currentUserKey = "currentUser"

// SessionStore administra la sesión activa sobre dos áreas de persistencia:
// la durable ("remember me") y la efímera. Mantiene además el puntero en
// memoria que consultan el resto de los servicios.
type SessionStore struct {
	logger    *zap.Logger
	durable   repository.KVStore
	ephemeral repository.KVStore

	mu      sync.RWMutex
	current *domain.Session

	// onChange se dispara tras cada cambio de sesión (refresco de UI).
	onChange func(*domain.Session)
}

func NewSessionStore(logger *zap.Logger, durable, ephemeral repository.KVStore, onChange func(*domain.Session)) *SessionStore {
	return &SessionStore{
		logger:    logger,
		durable:   durable,
		ephemeral: ephemeral,
		onChange:  onChange,
	}
}

// Load lee la sesión persistida al arranque. Igual que el cliente de
// referencia, solo consulta el área durable: una sesión no recordada no
// sobrevive a un reinicio.
func (s *SessionStore) Load(ctx context.Context) error {
	raw, ok, err := s.durable.Get(ctx, currentUserKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	var sess domain.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger.Warn("stored session unreadable, discarding", zap.Error(err))
		return s.durable.Delete(ctx, currentUserKey)
	}
	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return nil
}

// Active devuelve la sesión activa o nil si nadie inició sesión.
func (s *SessionStore) Active() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// SetActive registra la sesión activa. Con persist va al área durable;
// si no, al área efímera.
func (s *SessionStore) SetActive(ctx context.Context, sess domain.Session, persist bool) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	area := s.ephemeral
	if persist {
		area = s.durable
	}
	if err := area.Set(ctx, currentUserKey, string(raw)); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	s.notify(&sess)
	return nil
}

// Clear cierra la sesión: limpia ambas áreas y el puntero en memoria.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.durable.Delete(ctx, currentUserKey); err != nil {
		return err
	}
	if err := s.ephemeral.Delete(ctx, currentUserKey); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.notify(nil)
	return nil
}

func (s *SessionStore) notify(sess *domain.Session) {
	if s.onChange != nil {
		s.onChange(sess)
	}
}

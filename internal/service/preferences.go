package service

import (
	"context"
	"errors"

	"github.com/akash-23-k/Tech-Query/internal/repository"
)

const themeKey = "theme"

// ErrUnknownTheme indica un valor de tema fuera de light|dark.
var ErrUnknownTheme = errors.New("unknown theme")

// Preferences guarda preferencias cosméticas en el área durable.
type Preferences struct {
	store repository.KVStore
}

func NewPreferences(store repository.KVStore) *Preferences {
	return &Preferences{store: store}
}

// Theme devuelve el tema guardado, "light" si nunca se eligió uno.
func (p *Preferences) Theme(ctx context.Context) (string, error) {
	value, ok, err := p.store.Get(ctx, themeKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "light", nil
	}
	return value, nil
}

// SetTheme persiste el tema elegido.
func (p *Preferences) SetTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return ErrUnknownTheme
	}
	return p.store.Set(ctx, themeKey, theme)
}

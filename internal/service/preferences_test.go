package service

import (
	"context"
	"errors"
	"testing"

	"github.com/akash-23-k/Tech-Query/internal/repository"
)

func TestPreferencesTheme(t *testing.T) {
	prefs := NewPreferences(repository.NewMemoryKV())

	theme, err := prefs.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != "light" {
		t.Fatalf("expected default light, got %q", theme)
	}

	if err := prefs.SetTheme(context.Background(), "dark"); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	theme, err = prefs.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != "dark" {
		t.Fatalf("expected dark, got %q", theme)
	}

	if err := prefs.SetTheme(context.Background(), "sepia"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
}

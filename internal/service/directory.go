package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/akash-23-k/Tech-Query/internal/domain"
	"github.com/akash-23-k/Tech-Query/internal/repository"
)

const usersKey = "users"

var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateMobile    = errors.New("mobile number already exists")
	ErrInvalidCredentials = errors.New("invalid email/mobile or password")
	ErrMissingFields      = errors.New("please fill in all fields")
	ErrSecretTooShort     = errors.New("password must be at least 6 characters")
)

// CredentialDirectory administra la colección de cuentas registradas en el
// área durable: chequeos de unicidad al registrar y verificación de
// credenciales al autenticar.
type CredentialDirectory struct {
	logger *zap.Logger
	store  repository.KVStore
	delay  time.Duration

	// Serializa el check-then-insert del registro; sin esto dos registros
	// simultáneos podrían pasar ambos el chequeo de duplicados.
	mu sync.Mutex
}

func NewCredentialDirectory(logger *zap.Logger, store repository.KVStore, delay time.Duration) *CredentialDirectory {
	return &CredentialDirectory{
		logger: logger,
		store:  store,
		delay:  delay,
	}
}

// RegisterInput reúne los datos del formulario de alta.
type RegisterInput struct {
	Name   string
	Email  string
	Mobile string
	Secret string
}

// Register crea una cuenta nueva. Falla con ErrDuplicateEmail o
// ErrDuplicateMobile si otra cuenta ya usa esos datos. El secreto se guarda
// como hash bcrypt, nunca en claro.
func (d *CredentialDirectory) Register(ctx context.Context, input RegisterInput) (domain.Account, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	mobile := strings.TrimSpace(input.Mobile)
	secret := input.Secret

	if name == "" || email == "" || mobile == "" || secret == "" {
		return domain.Account{}, ErrMissingFields
	}
	if len(secret) < 6 {
		return domain.Account{}, ErrSecretTooShort
	}

	if err := d.simulateLatency(ctx); err != nil {
		return domain.Account{}, err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return domain.Account{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	accounts, err := d.loadAccounts(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	for _, a := range accounts {
		if a.Email == email {
			return domain.Account{}, ErrDuplicateEmail
		}
		if a.Mobile == mobile {
			return domain.Account{}, ErrDuplicateMobile
		}
	}

	account := domain.Account{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Mobile:     mobile,
		SecretHash: string(hashBytes),
		CreatedAt:  time.Now().UTC(),
	}
	accounts = append(accounts, account)
	if err := d.saveAccounts(ctx, accounts); err != nil {
		return domain.Account{}, err
	}

	d.logger.Info("account registered", zap.String("account_id", account.ID))
	return account, nil
}

// Authenticate verifica identificador y secreto. El identificador puede ser
// el email o el móvil; la comparación es exacta y sensible a mayúsculas.
func (d *CredentialDirectory) Authenticate(ctx context.Context, identifier, secret string) (domain.Account, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || secret == "" {
		return domain.Account{}, ErrInvalidCredentials
	}

	if err := d.simulateLatency(ctx); err != nil {
		return domain.Account{}, err
	}

	accounts, err := d.loadAccounts(ctx)
	if err != nil {
		return domain.Account{}, err
	}
	for _, a := range accounts {
		if a.Email != identifier && a.Mobile != identifier {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.SecretHash), []byte(secret)) == nil {
			return a, nil
		}
	}
	return domain.Account{}, ErrInvalidCredentials
}

func (d *CredentialDirectory) loadAccounts(ctx context.Context) ([]domain.Account, error) {
	raw, ok, err := d.store.Get(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var accounts []domain.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (d *CredentialDirectory) saveAccounts(ctx context.Context, accounts []domain.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return d.store.Set(ctx, usersKey, string(raw))
}

// simulateLatency reproduce el round trip ficticio del cliente original.
// Con delay cero vuelve de inmediato.
func (d *CredentialDirectory) simulateLatency(ctx context.Context) error {
	if d.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(d.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package domain

import "time"

// Account es el registro completo de un usuario registrado. El hash del
// secreto solo existe para persistencia interna; nunca se expone al cliente.
type Account struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	SecretHash string    `json:"secret_hash,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Session devuelve la proyección redactada del account (sin credenciales).
func (a Account) Session() Session {
	return Session{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		Mobile: a.Mobile,
	}
}

package domain

// Session es la identidad activa del usuario, derivada del Account al
// autenticarse. Es un snapshot: no mantiene referencia viva al Account.
type Session struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akash-23-k/Tech-Query/internal/service"
)

// AuthHandler mantiene dependencias para los endpoints de cuentas y sesión.
type AuthHandler struct {
	logger    *zap.Logger
	directory *service.CredentialDirectory
	sessions  *service.SessionStore
	tokens    *service.TokenService
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, directory *service.CredentialDirectory, sessions *service.SessionStore, tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		directory: directory,
		sessions:  sessions,
		tokens:    tokens,
	}
}

// Signup maneja POST /auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Name            string `json:"name" binding:"required"`
		Email           string `json:"email" binding:"required,email"`
		Mobile          string `json:"mobile" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
		AgreeTerms      bool   `json:"agree_terms"`
		Remember        bool   `json:"remember"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all fields"})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		return
	}
	if !req.AgreeTerms {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please agree to the terms and conditions"})
		return
	}

	account, err := h.directory.Register(c.Request.Context(), service.RegisterInput{
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
		Secret: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail),
			errors.Is(err, service.ErrDuplicateMobile):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrSecretTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		default:
			h.logger.Error("signup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
			return
		}
	}

	// Igual que el cliente original, el alta siempre deja sesión recordada.
	sess := account.Session()
	if err := h.sessions.SetActive(c.Request.Context(), sess, true); err != nil {
		h.logger.Error("set session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
		return
	}

	pair, err := h.tokens.GeneratePair(sess)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess, "tokens": pair})
}

// Login maneja POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
		Remember   bool   `json:"remember"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "please fill in all fields"})
		return
	}

	account, err := h.directory.Authenticate(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not login"})
		return
	}

	sess := account.Session()
	if err := h.sessions.SetActive(c.Request.Context(), sess, req.Remember); err != nil {
		h.logger.Error("set session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
		return
	}

	pair, err := h.tokens.GeneratePair(sess)
	if err != nil {
		h.logger.Error("jwt issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "tokens": pair})
}

// Logout maneja POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	// El body es opcional; sin refresh token solo se limpia la sesión.
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken != "" {
		if err := h.tokens.RevokeRefresh(req.RefreshToken); err != nil {
			h.logger.Warn("revoke refresh failed", zap.Error(err))
		}
	}
	if err := h.sessions.Clear(c.Request.Context()); err != nil {
		h.logger.Error("clear session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// Refresh maneja POST /auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := h.tokens.RefreshPair(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokens": pair})
}

// Session maneja GET /auth/session.
func (h *AuthHandler) Session(c *gin.Context) {
	sess := h.sessions.Active()
	if sess == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

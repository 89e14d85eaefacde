package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akash-23-k/Tech-Query/internal/service"
)

// PreferencesHandler mantiene dependencias para los endpoints de preferencias.
type PreferencesHandler struct {
	logger *zap.Logger
	prefs  *service.Preferences
}

func NewPreferencesHandler(logger *zap.Logger, prefs *service.Preferences) *PreferencesHandler {
	return &PreferencesHandler{
		logger: logger,
		prefs:  prefs,
	}
}

// GetTheme maneja GET /preferences/theme.
func (h *PreferencesHandler) GetTheme(c *gin.Context) {
	theme, err := h.prefs.Theme(c.Request.Context())
	if err != nil {
		h.logger.Error("get theme failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// SetTheme maneja PUT /preferences/theme.
func (h *PreferencesHandler) SetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.prefs.SetTheme(c.Request.Context(), req.Theme); err != nil {
		if errors.Is(err, service.ErrUnknownTheme) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("set theme failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

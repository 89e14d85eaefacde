package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akash-23-k/Tech-Query/internal/service"
)

// QueryHandler mantiene dependencias para el endpoint de consultas.
type QueryHandler struct {
	logger    *zap.Logger
	responder *service.QueryResponder
}

// NewQueryHandler crea una instancia de QueryHandler con dependencias necesarias.
func NewQueryHandler(logger *zap.Logger, responder *service.QueryResponder) *QueryHandler {
	return &QueryHandler{
		logger:    logger,
		responder: responder,
	}
}

// PostQuery maneja POST /query.
func (h *QueryHandler) PostQuery(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	answer, err := h.responder.Submit(c.Request.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case errors.Is(err, service.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		case errors.Is(err, service.ErrServiceUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		default:
			h.logger.Error("query failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process query"})
			return
		}
	}

	c.JSON(http.StatusOK, answer)
}

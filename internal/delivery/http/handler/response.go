package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

var errorStatus = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrNotParticipant, http.StatusForbidden},
	{domain.ErrProfileNotFound, http.StatusNotFound},
	{domain.ErrMatchNotFound, http.StatusNotFound},
	{domain.ErrRequestNotFound, http.StatusNotFound},
	{domain.ErrLivingSpaceAttached, http.StatusConflict},
	{domain.ErrInvalidStatusTransition, http.StatusConflict},
	{domain.ErrRequestAlreadyAnswered, http.StatusConflict},
	{domain.ErrInvalidRequest, http.StatusBadRequest},
	{domain.ErrCannotInteractWithSelf, http.StatusBadRequest},
	{domain.ErrInvalidInteractionType, http.StatusBadRequest},
	{domain.ErrInvalidResponseType, http.StatusBadRequest},
	{domain.ErrInvalidCommunicationStyle, http.StatusBadRequest},
}

// writeError maps domain errors to status codes. Anything unknown is logged
// and reported as a generic 500.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			c.JSON(e.status, ErrorResponse{Error: e.err.Error()})
			return
		}
	}

	logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// currentUserID reads the id stored by the auth middleware.
func currentUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	id, ok := userID.(int)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return id, true
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

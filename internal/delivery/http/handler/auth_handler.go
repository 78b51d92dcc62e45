package handler

import (
	"net/http"
	"time"

	"github.com/gdugdh24/roomies-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	tokenUseCase *auth.TokenUseCase
	logger       *zap.Logger
}

func NewAuthHandler(tokenUseCase *auth.TokenUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// DevTokenRequest asks for a token for an arbitrary user id
type DevTokenRequest struct {
	UserID int `json:"user_id" binding:"required,gt=0"`
}

// TokenResponse represents an issued access token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// DevToken handles POST /auth/dev-token
// @Summary Issue a development token
// @Description Only routed outside production
// @Tags auth
// @Accept json
// @Produce json
// @Param request body DevTokenRequest true "User id"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/dev-token [post]
func (h *AuthHandler) DevToken(c *gin.Context) {
	var req DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	token, expiresAt, err := h.tokenUseCase.IssueToken(req.UserID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, ExpiresAt: expiresAt})
}

// Me handles GET /auth/me
// @Summary Current user id
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}

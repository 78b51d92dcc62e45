package handler

import (
	"net/http"

	"github.com/gdugdh24/roomies-backend/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
	logger       *zap.Logger
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase, logger *zap.Logger) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
		logger:       logger,
	}
}

// Swipe handles POST /swipe
// @Summary Record an interaction
// @Description Idempotent per (actor, target). A like that completes a pair returns match_id.
// @Tags swipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.InteractionRequest true "Interaction"
// @Success 200 {object} swipe.RecordResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /swipe [post]
func (h *SwipeHandler) Swipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req swipe.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.swipeUseCase.RecordInteraction(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ListRequests handles GET /requests
// @Summary Incoming likes
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Success 200 {array} swipe.IncomingRequest
// @Failure 401 {object} ErrorResponse
// @Router /requests [get]
func (h *SwipeHandler) ListRequests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	requests, err := h.swipeUseCase.ListIncomingRequests(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "total": len(requests)})
}

// RespondToRequest handles POST /requests/respond
// @Summary Accept or decline an incoming like
// @Tags swipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.RespondRequest true "Response"
// @Success 200 {object} swipe.RecordResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /requests/respond [post]
func (h *SwipeHandler) RespondToRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req swipe.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.swipeUseCase.RespondToRequest(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

package handler

import (
	"net/http"

	"github.com/gdugdh24/roomies-backend/internal/usecase/feed"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
	logger      *zap.Logger
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

// GetSuggestions handles GET /suggestions
// @Summary Ranked flatmate suggestions
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of suggestions"
// @Success 200 {array} feed.Suggestion
// @Failure 404 {object} ErrorResponse
// @Router /suggestions [get]
func (h *FeedHandler) GetSuggestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	suggestions, err := h.feedUseCase.GetSuggestions(c.Request.Context(), userID, intQuery(c, "limit", 0))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

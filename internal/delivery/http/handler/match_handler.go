package handler

import (
	"net/http"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/gdugdh24/roomies-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultMatchPageSize = 20

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
	logger       *zap.Logger
}

func NewMatchHandler(matchUseCase *match.MatchUseCase, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
		logger:       logger,
	}
}

// SetPrimaryRequest sets or clears the caller's primary flag
type SetPrimaryRequest struct {
	IsPrimary *bool `json:"is_primary" binding:"required"`
}

// UpdateStatusRequest moves a match to a new status
type UpdateStatusRequest struct {
	Status domain.MatchStatus `json:"status" binding:"required"`
}

// ListMatches handles GET /matches
// @Summary My matches
// @Description Primary match first, then by compatibility
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} match.MatchSummary
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := intQuery(c, "limit", defaultMatchPageSize)
	if limit == 0 || limit > 100 {
		limit = defaultMatchPageSize
	}
	offset := intQuery(c, "offset", 0)

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches, "limit": limit, "offset": offset})
}

// SetPrimary handles PUT /matches/:id/primary
// @Summary Mark a match as my primary match
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match id"
// @Param request body SetPrimaryRequest true "Flag"
// @Success 200 {object} domain.Match
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id}/primary [put]
func (h *MatchHandler) SetPrimary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req SetPrimaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	m, err := h.matchUseCase.SetPrimary(c.Request.Context(), matchID, userID, *req.IsPrimary)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// UpdateStatus handles PUT /matches/:id/status
// @Summary Change match status
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match id"
// @Param request body UpdateStatusRequest true "Status"
// @Success 200 {object} domain.Match
// @Failure 409 {object} ErrorResponse
// @Router /matches/{id}/status [put]
func (h *MatchHandler) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := intParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	m, err := h.matchUseCase.UpdateStatus(c.Request.Context(), matchID, userID, req.Status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// Unmatch handles DELETE /matches/:id
// @Summary Remove a match
// @Description Fails with 409 while a shared living space is attached
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match id"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /matches/{id} [delete]
func (h *MatchHandler) Unmatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := intParam(c, "id")
	if !ok {
		return
	}

	if err := h.matchUseCase.Unmatch(c.Request.Context(), matchID, userID); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "unmatched"})
}

// SharedSpace handles POST /matches/:id/space
// @Summary Get or create the shared living space
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} ErrorResponse
// @Router /matches/{id}/space [post]
func (h *MatchHandler) SharedSpace(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := intParam(c, "id")
	if !ok {
		return
	}

	spaceID, err := h.matchUseCase.GetOrCreateSharedSpace(c.Request.Context(), matchID, userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"living_space_id": spaceID.String()})
}

// Explanation handles GET /matches/:id/explanation
// @Summary Why this match works
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path int true "Match id"
// @Success 200 {object} map[string]string
// @Router /matches/{id}/explanation [get]
func (h *MatchHandler) Explanation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := intParam(c, "id")
	if !ok {
		return
	}

	text, err := h.matchUseCase.Explain(c.Request.Context(), matchID, userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"explanation": text})
}

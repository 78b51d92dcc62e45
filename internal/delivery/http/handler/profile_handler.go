package handler

import (
	"net/http"

	"github.com/gdugdh24/roomies-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
	logger         *zap.Logger
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// GetMyPersonality handles GET /personality/me
// @Summary Get my personality profile
// @Tags personality
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.PersonalityProfile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /personality/me [get]
func (h *ProfileHandler) GetMyPersonality(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetPersonality(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpsertMyPersonality handles PUT /personality/me
// @Summary Save my personality profile
// @Description Scores outside 0-100 are clamped
// @Tags personality
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.PersonalityRequest true "Survey results"
// @Success 200 {object} domain.PersonalityProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /personality/me [put]
func (h *ProfileHandler) UpsertMyPersonality(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.PersonalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	p, err := h.profileUseCase.UpsertPersonality(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

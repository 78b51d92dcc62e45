package handler

import (
	"net/http"

	compatuc "github.com/gdugdh24/roomies-backend/internal/usecase/compatibility"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CompatibilityHandler struct {
	compatibilityUseCase *compatuc.CompatibilityUseCase
	logger               *zap.Logger
}

func NewCompatibilityHandler(compatibilityUseCase *compatuc.CompatibilityUseCase, logger *zap.Logger) *CompatibilityHandler {
	return &CompatibilityHandler{
		compatibilityUseCase: compatibilityUseCase,
		logger:               logger,
	}
}

// GetCompatibility handles GET /compatibility/:user_id
// @Summary Compatibility with another user
// @Description mode=auto falls back to the legacy formula when a survey is missing.
// @Description An undefined result (defined=false) means one side has no profile.
// @Tags compatibility
// @Security BearerAuth
// @Produce json
// @Param user_id path int true "Other user id"
// @Param mode query string false "composite (default) or auto"
// @Success 200 {object} domain.CompatibilityResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /compatibility/{user_id} [get]
func (h *CompatibilityHandler) GetCompatibility(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	otherID, ok := intParam(c, "user_id")
	if !ok {
		return
	}

	compute := h.compatibilityUseCase.Compute
	switch c.DefaultQuery("mode", "composite") {
	case "composite":
	case "auto":
		compute = h.compatibilityUseCase.ComputeAuto
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "mode must be 'composite' or 'auto'"})
		return
	}

	res, err := compute(c.Request.Context(), userID, otherID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/parkgate-inc/parkgate/internal/application/parking/usecases"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
	"github.com/parkgate-inc/parkgate/internal/shared/utils"
)

type AdminHandler struct {
	reassignTenantUC reassignTenantUseCase
	logger           logger.Interface
}

func NewAdminHandler(reassignTenantUC reassignTenantUseCase, logger logger.Interface) *AdminHandler {
	return &AdminHandler{
		reassignTenantUC: reassignTenantUC,
		logger:           logger,
	}
}

type ReassignTenantRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// ReassignTenant moves every record of one business to another. Used when a
// facility changes owners and its history must follow.
func (h *AdminHandler) ReassignTenant(c *gin.Context) {
	if _, ok := businessIDFromContext(c); !ok {
		return
	}

	var req ReassignTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for tenant reassignment", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.reassignTenantUC.Execute(c.Request.Context(), usecases.ReassignTenantCommand{
		FromBusinessSID: req.From,
		ToBusinessSID:   req.To,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Tenant reassigned")
}

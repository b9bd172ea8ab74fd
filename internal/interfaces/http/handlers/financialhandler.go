package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/parkgate-inc/parkgate/internal/application/financial/usecases"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
	"github.com/parkgate-inc/parkgate/internal/shared/utils"
)

type FinancialHandler struct {
	getResumeByDateUC  getResumeByDateUseCase
	getResumeByRangeUC getResumeByRangeUseCase
	logger             logger.Interface
}

func NewFinancialHandler(
	getResumeByDateUC getResumeByDateUseCase,
	getResumeByRangeUC getResumeByRangeUseCase,
	logger logger.Interface,
) *FinancialHandler {
	return &FinancialHandler{
		getResumeByDateUC:  getResumeByDateUC,
		getResumeByRangeUC: getResumeByRangeUC,
		logger:             logger,
	}
}

// GetResumeByDate returns the revenue summary for one business day.
func (h *FinancialHandler) GetResumeByDate(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	result, err := h.getResumeByDateUC.Execute(c.Request.Context(), usecases.GetResumeByDateQuery{
		BusinessID: businessID,
		Date:       c.Param("date"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetResumeByRange returns the revenue summary over an inclusive date range.
func (h *FinancialHandler) GetResumeByRange(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	result, err := h.getResumeByRangeUC.Execute(c.Request.Context(), usecases.GetResumeByRangeQuery{
		BusinessID: businessID,
		DateStart:  c.Query("date_start"),
		DateEnd:    c.Query("date_end"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/parkgate-inc/parkgate/internal/application/parking/usecases"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
	"github.com/parkgate-inc/parkgate/internal/shared/utils"
)

type ParkingHandler struct {
	openSessionUC       openSessionUseCase
	closeSessionUC      closeSessionUseCase
	getOpenSessionUC    getOpenSessionUseCase
	listSessionsUC      listSessionsUseCase
	softDeleteSessionUC softDeleteSessionUseCase
	logger              logger.Interface
}

func NewParkingHandler(
	openSessionUC openSessionUseCase,
	closeSessionUC closeSessionUseCase,
	getOpenSessionUC getOpenSessionUseCase,
	listSessionsUC listSessionsUseCase,
	softDeleteSessionUC softDeleteSessionUseCase,
	logger logger.Interface,
) *ParkingHandler {
	return &ParkingHandler{
		openSessionUC:       openSessionUC,
		closeSessionUC:      closeSessionUC,
		getOpenSessionUC:    getOpenSessionUC,
		listSessionsUC:      listSessionsUC,
		softDeleteSessionUC: softDeleteSessionUC,
		logger:              logger,
	}
}

type VehicleEntryRequest struct {
	PlateNumber  string `json:"plate" binding:"required"`
	VehicleClass string `json:"vehicle_class" binding:"omitempty,oneof=car motorcycle"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
}

type VehicleExitRequest struct {
	PlateNumber   string `json:"plate" binding:"required"`
	CostCents     int64  `json:"cost_cents" binding:"min=0"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash transfer credit debit other"`
}

// VehicleEntry admits a vehicle through the gate and opens its session.
func (h *ParkingHandler) VehicleEntry(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var req VehicleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for vehicle entry", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.OpenSessionCommand{
		BusinessID:   businessID,
		PlateNumber:  req.PlateNumber,
		VehicleClass: req.VehicleClass,
		OwnerName:    req.OwnerName,
		OwnerPhone:   req.OwnerPhone,
	}

	result, err := h.openSessionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Vehicle admitted")
}

// VehicleExit closes the open session for a plate with the charged amount.
func (h *ParkingHandler) VehicleExit(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var req VehicleExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for vehicle exit", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.CloseSessionCommand{
		BusinessID:    businessID,
		PlateNumber:   req.PlateNumber,
		CostCents:     req.CostCents,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
	}

	result, err := h.closeSessionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Vehicle checked out")
}

// GetOpenSession shows the live state of a parked vehicle.
func (h *ParkingHandler) GetOpenSession(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	plate, err := utils.ParsePlateParam(c, "plate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOpenSessionUC.Execute(c.Request.Context(), usecases.GetOpenSessionQuery{
		BusinessID:  businessID,
		PlateNumber: plate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListSessions pages through closed sessions within a business-day range.
func (h *ParkingHandler) ListSessions(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	query := usecases.ListSessionsQuery{
		BusinessID: businessID,
		DateStart:  c.Query("date_start"),
		DateEnd:    c.Query("date_end"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	result, err := h.listSessionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Sessions, result.Total, pagination.Page, pagination.PageSize)
}

// SoftDeleteSession strikes a session from reports while keeping the row,
// and returns the marked session.
func (h *ParkingHandler) SoftDeleteSession(c *gin.Context) {
	if _, ok := businessIDFromContext(c); !ok {
		return
	}

	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixParkingSession, "parking session")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.softDeleteSessionUC.Execute(c.Request.Context(), usecases.SoftDeleteSessionCommand{SID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

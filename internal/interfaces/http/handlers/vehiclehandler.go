package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/parkgate-inc/parkgate/internal/application/vehicle/usecases"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
	"github.com/parkgate-inc/parkgate/internal/shared/utils"
)

type VehicleHandler struct {
	listVehiclesUC      listVehiclesUseCase
	getVehicleByPlateUC getVehicleByPlateUseCase
	updateVehicleUC     updateVehicleUseCase
	logger              logger.Interface
}

func NewVehicleHandler(
	listVehiclesUC listVehiclesUseCase,
	getVehicleByPlateUC getVehicleByPlateUseCase,
	updateVehicleUC updateVehicleUseCase,
	logger logger.Interface,
) *VehicleHandler {
	return &VehicleHandler{
		listVehiclesUC:      listVehiclesUC,
		getVehicleByPlateUC: getVehicleByPlateUC,
		updateVehicleUC:     updateVehicleUC,
		logger:              logger,
	}
}

type UpdateVehicleRequest struct {
	VehicleClass *string `json:"vehicle_class" binding:"omitempty,oneof=car motorcycle"`
	OwnerName    *string `json:"owner_name"`
	OwnerPhone   *string `json:"owner_phone"`
}

// ListVehicles pages through the registry of the business.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listVehiclesUC.Execute(c.Request.Context(), usecases.ListVehiclesQuery{
		BusinessID: businessID,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Vehicles, result.Total, pagination.Page, pagination.PageSize)
}

// GetVehicleByPlate looks up a registry record by plate number.
func (h *VehicleHandler) GetVehicleByPlate(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	plate, err := utils.ParsePlateParam(c, "plate")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getVehicleByPlateUC.Execute(c.Request.Context(), usecases.GetVehicleByPlateQuery{
		BusinessID:  businessID,
		PlateNumber: plate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateVehicle edits the mutable registry fields of a vehicle.
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixVehicle, "vehicle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update vehicle", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateVehicleUC.Execute(c.Request.Context(), usecases.UpdateVehicleCommand{
		BusinessID: businessID,
		SID:        sid,
		Class:      req.VehicleClass,
		OwnerName:  req.OwnerName,
		Phone:      req.OwnerPhone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

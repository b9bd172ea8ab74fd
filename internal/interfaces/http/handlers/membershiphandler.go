package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/parkgate-inc/parkgate/internal/application/membership/usecases"
	"github.com/parkgate-inc/parkgate/internal/shared/constants"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
	"github.com/parkgate-inc/parkgate/internal/shared/utils"
)

type MembershipHandler struct {
	createMembershipUC createMembershipUseCase
	toggleMembershipUC toggleMembershipUseCase
	listMembershipsUC  listMembershipsUseCase
	logger             logger.Interface
}

func NewMembershipHandler(
	createMembershipUC createMembershipUseCase,
	toggleMembershipUC toggleMembershipUseCase,
	listMembershipsUC listMembershipsUseCase,
	logger logger.Interface,
) *MembershipHandler {
	return &MembershipHandler{
		createMembershipUC: createMembershipUC,
		toggleMembershipUC: toggleMembershipUC,
		listMembershipsUC:  listMembershipsUC,
		logger:             logger,
	}
}

type CreateMembershipRequest struct {
	PlateNumber  string `json:"plate" binding:"required"`
	VehicleClass string `json:"vehicle_class" binding:"omitempty,oneof=car motorcycle"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
	ValueCents   int64  `json:"value_cents" binding:"omitempty,min=0"`
	EndsAt       string `json:"ends_at" binding:"omitempty,datetime=2006-01-02"`
}

type ToggleMembershipRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// CreateMembership sells a membership for a plate, registering the vehicle
// when it is new.
func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	var req CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create membership", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.CreateMembershipCommand{
		BusinessID:   businessID,
		PlateNumber:  req.PlateNumber,
		VehicleClass: req.VehicleClass,
		OwnerName:    req.OwnerName,
		OwnerPhone:   req.OwnerPhone,
		ValueCents:   req.ValueCents,
	}

	if req.EndsAt != "" {
		endsAt, err := time.ParseInLocation(constants.DateLayout, req.EndsAt, time.UTC)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("ends_at must use the YYYY-MM-DD layout"))
			return
		}
		// Coverage runs through the whole end date.
		endOfDay := endsAt.Add(24*time.Hour - time.Second)
		cmd.EndsAt = &endOfDay
	}

	result, err := h.createMembershipUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Membership created")
}

// ToggleMembership enables or disables a membership.
func (h *MembershipHandler) ToggleMembership(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixMembership, "membership")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ToggleMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for toggle membership", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.toggleMembershipUC.Execute(c.Request.Context(), usecases.ToggleMembershipCommand{
		BusinessID: businessID,
		SID:        sid,
		Enabled:    *req.Enabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListMemberships pages through the memberships of the business, optionally
// narrowed to one vehicle via the vehicle_sid query parameter.
func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	businessID, ok := businessIDFromContext(c)
	if !ok {
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listMembershipsUC.Execute(c.Request.Context(), usecases.ListMembershipsQuery{
		BusinessID: businessID,
		VehicleSID: c.Query("vehicle_sid"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Memberships, result.Total, pagination.Page, pagination.PageSize)
}

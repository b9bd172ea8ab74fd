package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkgate-inc/parkgate/internal/shared/constants"
	"github.com/parkgate-inc/parkgate/internal/shared/utils"
)

// businessIDFromContext extracts the tenant set by the auth middleware. A
// missing or mistyped value means the route was wired without RequireTenant;
// the request is rejected rather than served unscoped.
func businessIDFromContext(c *gin.Context) (uint, bool) {
	val, exists := c.Get(constants.ContextKeyBusinessID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing business context")
		return 0, false
	}
	businessID, ok := val.(uint)
	if !ok || businessID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid business context")
		return 0, false
	}
	return businessID, true
}

package utils

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/parkgate-inc/parkgate/internal/shared/errors"
	"github.com/parkgate-inc/parkgate/internal/shared/id"
)

// ParseSIDParam parses and validates a Stripe-style prefixed ID from a URL
// path parameter. paramName is the Gin route parameter name (e.g., "sid"),
// prefix the expected SID prefix (e.g., id.PrefixVehicle), entityName is used
// in error messages.
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}

// ParsePlateParam extracts a plate number path parameter and canonicalizes it
// to the stored uppercase form.
func ParsePlateParam(c *gin.Context, paramName string) (string, error) {
	plate := strings.ToUpper(strings.TrimSpace(c.Param(paramName)))
	if plate == "" {
		return "", errors.NewValidationError("plate number is required")
	}
	return plate, nil
}

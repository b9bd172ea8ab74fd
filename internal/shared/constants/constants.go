package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyBusinessID  = "business_id"
	ContextKeyBusinessSID = "business_sid"
	ContextKeyRequestID   = "request_id"

	// Database table names
	TableBusinesses      = "businesses"
	TableVehicles        = "vehicles"
	TableParkingSessions = "parking_sessions"
	TableMemberships     = "memberships"

	// Date layout accepted by the financial and session range endpoints.
	DateLayout = "2006-01-02"
)

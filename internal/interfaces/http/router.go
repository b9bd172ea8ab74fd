package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	financialusecases "github.com/parkgate-inc/parkgate/internal/application/financial/usecases"
	membershipusecases "github.com/parkgate-inc/parkgate/internal/application/membership/usecases"
	parkingusecases "github.com/parkgate-inc/parkgate/internal/application/parking/usecases"
	vehicleusecases "github.com/parkgate-inc/parkgate/internal/application/vehicle/usecases"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/auth"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/config"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/repository"
	"github.com/parkgate-inc/parkgate/internal/interfaces/http/handlers"
	"github.com/parkgate-inc/parkgate/internal/interfaces/http/middleware"
	"github.com/parkgate-inc/parkgate/internal/shared/db"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into the HTTP surface.
type Router struct {
	engine            *gin.Engine
	parkingHandler    *handlers.ParkingHandler
	financialHandler  *handlers.FinancialHandler
	membershipHandler *handlers.MembershipHandler
	vehicleHandler    *handlers.VehicleHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
	allowedOrigins    []string
	logger            logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
// redisClient may be nil when rate limiting is disabled.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	vehicleRepo := repository.NewVehicleRepository(database, log)
	sessionRepo := repository.NewParkingSessionRepository(database, log)
	membershipRepo := repository.NewMembershipRepository(database, log)
	businessRepo := repository.NewBusinessRepository(database, log)
	txManager := db.NewTransactionManager(database)

	openSessionUC := parkingusecases.NewOpenSessionUseCase(vehicleRepo, sessionRepo, membershipRepo, txManager, log)
	closeSessionUC := parkingusecases.NewCloseSessionUseCase(vehicleRepo, sessionRepo, txManager, log)
	getOpenSessionUC := parkingusecases.NewGetOpenSessionUseCase(vehicleRepo, sessionRepo, log)
	listSessionsUC := parkingusecases.NewListSessionsUseCase(vehicleRepo, sessionRepo, log)
	softDeleteSessionUC := parkingusecases.NewSoftDeleteSessionUseCase(sessionRepo, vehicleRepo, log)
	reassignTenantUC := parkingusecases.NewReassignTenantUseCase(businessRepo, vehicleRepo, sessionRepo, membershipRepo, log)

	getResumeByDateUC := financialusecases.NewGetResumeByDateUseCase(sessionRepo, membershipRepo, log)
	getResumeByRangeUC := financialusecases.NewGetResumeByRangeUseCase(sessionRepo, membershipRepo, log)

	createMembershipUC := membershipusecases.NewCreateMembershipUseCase(vehicleRepo, membershipRepo, log)
	toggleMembershipUC := membershipusecases.NewToggleMembershipUseCase(membershipRepo, log)
	listMembershipsUC := membershipusecases.NewListMembershipsUseCase(vehicleRepo, membershipRepo, log)

	listVehiclesUC := vehicleusecases.NewListVehiclesUseCase(vehicleRepo, log)
	getVehicleByPlateUC := vehicleusecases.NewGetVehicleByPlateUseCase(vehicleRepo, log)
	updateVehicleUC := vehicleusecases.NewUpdateVehicleUseCase(vehicleRepo, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute)
	}

	return &Router{
		engine:            engine,
		parkingHandler:    handlers.NewParkingHandler(openSessionUC, closeSessionUC, getOpenSessionUC, listSessionsUC, softDeleteSessionUC, log),
		financialHandler:  handlers.NewFinancialHandler(getResumeByDateUC, getResumeByRangeUC, log),
		membershipHandler: handlers.NewMembershipHandler(createMembershipUC, toggleMembershipUC, listMembershipsUC, log),
		vehicleHandler:    handlers.NewVehicleHandler(listVehiclesUC, getVehicleByPlateUC, updateVehicleUC, log),
		adminHandler:      handlers.NewAdminHandler(reassignTenantUC, log),
		authMiddleware:    authMiddleware,
		rateLimiter:       rateLimiter,
		allowedOrigins:    cfg.Server.AllowedOrigins,
		logger:            log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.RequireTenant())
	{
		parking := v1.Group("/parking")
		{
			parking.POST("/entry", r.limited(), r.parkingHandler.VehicleEntry)
			parking.POST("/exit", r.limited(), r.parkingHandler.VehicleExit)
			parking.GET("/open/:plate", r.parkingHandler.GetOpenSession)
			parking.GET("/sessions", r.parkingHandler.ListSessions)
			parking.DELETE("/sessions/:sid", r.limited(), r.parkingHandler.SoftDeleteSession)
		}

		financial := v1.Group("/financial")
		{
			financial.GET("/resume/date/:date", r.financialHandler.GetResumeByDate)
			financial.GET("/resume/range", r.financialHandler.GetResumeByRange)
		}

		memberships := v1.Group("/memberships")
		{
			memberships.POST("", r.limited(), r.membershipHandler.CreateMembership)
			memberships.PATCH("/:sid/enable", r.limited(), r.membershipHandler.ToggleMembership)
			memberships.GET("", r.membershipHandler.ListMemberships)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("", r.vehicleHandler.ListVehicles)
			vehicles.GET("/plate/:plate", r.vehicleHandler.GetVehicleByPlate)
			vehicles.PATCH("/:sid", r.limited(), r.vehicleHandler.UpdateVehicle)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/tenants/reassign", r.limited(), r.adminHandler.ReassignTenant)
		}
	}
}

// limited applies the rate limiter to mutation endpoints when configured.
func (r *Router) limited() gin.HandlerFunc {
	if r.rateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.rateLimiter.Limit()
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Catalog      *api.CatalogHandler
	AdminCatalog *api.AdminCatalogHandler
	AdminPricing *api.AdminPricingHandler
	AdminUser    *api.AdminUserHandler
	AdminSeed    *api.AdminSeedHandler
	Report       *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		member := apiGroup.Group("")
		member.Use(authMiddleware.RequireAuth())
		{
			addRoutes(member, []route{
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListMyBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.CancelBooking},
				{Method: http.MethodGet, Path: "/courts", Handler: h.Catalog.ListCourts},
				{Method: http.MethodGet, Path: "/courts/:id", Handler: h.Catalog.GetCourt},
				{Method: http.MethodGet, Path: "/coaches", Handler: h.Catalog.ListCoaches},
				{Method: http.MethodGet, Path: "/equipment", Handler: h.Catalog.ListEquipment},
				{Method: http.MethodGet, Path: "/availability", Handler: h.Catalog.GetAvailability},
				{Method: http.MethodGet, Path: "/timeslots", Handler: h.Catalog.ListTimeSlots},
				{Method: http.MethodGet, Path: "/pricing-rules", Handler: h.Catalog.ListPricingRules},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/courts", Handler: h.AdminCatalog.CreateCourt},
				{Method: http.MethodPut, Path: "/courts/:id", Handler: h.AdminCatalog.UpdateCourt},
				{Method: http.MethodDelete, Path: "/courts/:id", Handler: h.AdminCatalog.DeleteCourt},
				{Method: http.MethodPost, Path: "/coaches", Handler: h.AdminCatalog.CreateCoach},
				{Method: http.MethodPut, Path: "/coaches/:id", Handler: h.AdminCatalog.UpdateCoach},
				{Method: http.MethodDelete, Path: "/coaches/:id", Handler: h.AdminCatalog.DeleteCoach},
				{Method: http.MethodPost, Path: "/equipment", Handler: h.AdminCatalog.CreateEquipment},
				{Method: http.MethodPut, Path: "/equipment/:id", Handler: h.AdminCatalog.UpdateEquipment},
				{Method: http.MethodDelete, Path: "/equipment/:id", Handler: h.AdminCatalog.DeleteEquipment},
				{Method: http.MethodGet, Path: "/pricing-rules", Handler: h.AdminPricing.ListPricingRules},
				{Method: http.MethodPut, Path: "/pricing-rules", Handler: h.AdminPricing.UpdatePricingRules},
				{Method: http.MethodGet, Path: "/users", Handler: h.AdminUser.ListUsers},
				{Method: http.MethodPut, Path: "/users/:id/role", Handler: h.AdminUser.ChangeRole},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.AdminUser.DeleteUser},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Report.ListAllBookings},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Report.GetStats},
				{Method: http.MethodGet, Path: "/reports/revenue", Handler: h.Report.GetRevenueByDay},
				{Method: http.MethodGet, Path: "/reports/revenue-by-court-type", Handler: h.Report.GetRevenueByCourtType},
				{Method: http.MethodGet, Path: "/reports/revenue-by-month", Handler: h.Report.GetRevenueByMonth},
				{Method: http.MethodGet, Path: "/reports/top-spenders", Handler: h.Report.GetTopSpenders},
			})

			if gin.Mode() == gin.DebugMode {
				admin.POST("/seed", h.AdminSeed.SeedDemoData)
			}
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package components

import (
	"courtbook/internal/handler"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewAdminCatalogHandler,
		api.NewAdminPricingHandler,
		api.NewAdminUserHandler,
		api.NewAdminSeedHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	catalog *api.CatalogHandler,
	adminCatalog *api.AdminCatalogHandler,
	adminPricing *api.AdminPricingHandler,
	adminUser *api.AdminUserHandler,
	adminSeed *api.AdminSeedHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Booking:      booking,
		Catalog:      catalog,
		AdminCatalog: adminCatalog,
		AdminPricing: adminPricing,
		AdminUser:    adminUser,
		AdminSeed:    adminSeed,
		Report:       report,
	}
}

package components

import (
	"courtbook/internal/infra/readstore"
	"courtbook/internal/infra/repository"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	repositoryModule,
	readstoreModule,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewCourtRepository,
			fx.As(new(commands.CourtRepository)),
		),
		fx.Annotate(
			repository.NewCoachRepository,
			fx.As(new(commands.CoachRepository)),
		),
		fx.Annotate(
			repository.NewEquipmentRepository,
			fx.As(new(commands.EquipmentRepository)),
		),
		fx.Annotate(
			repository.NewPricingRuleRepository,
			fx.As(new(commands.PricingRuleRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
		// Snapshot store feeds both the booking validator and the
		// availability view from the same queries.
		fx.Annotate(
			readstore.NewSnapshotReadStore,
			fx.As(new(commands.SnapshotReader)),
			fx.As(new(queries.DayScheduleReadStore)),
		),
	),
)

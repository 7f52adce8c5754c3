package components

import (
	repo_impl "canteen-core/internal/infra/repository"
	"canteen-core/internal/usecase/commands"
	"canteen-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(commands.OrderViewFinder)),
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			repo_impl.NewMenuItemRepository,
			fx.As(new(commands.MenuItemReader)),
		),
		fx.Annotate(
			repo_impl.NewActivityRepository,
			fx.As(new(commands.ActivityRecorder)),
			fx.As(new(queries.ActivityReadStore)),
		),
	),
)

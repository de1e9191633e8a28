package cmd

import (
	"context"
	"log/slog"

	kitchenposhttp "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/jobs"
	"kitchenpos/internal/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     kernel.ContentPolicy
	dispatcher ports.DeliveryDispatcher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	policy kernel.ContentPolicy,
	dispatcher ports.DeliveryDispatcher,
	m *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, countWrittenAggregates(m)),
		policy:     policy,
		dispatcher: dispatcher,
		metrics:    m,
		logger:     logger,
	}
}

func countWrittenAggregates(m *metrics.Metrics) postgres.CommitHook {
	return func(_ context.Context, written []postgres.TrackedAggregate) {
		for _, a := range written {
			m.AggregateWritten(a.Aggregate)
		}
	}
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuGroupUoWFactory() commands.MenuGroupUoWFactory {
	return FuncMenuGroupUoWFactory(func() commands.MenuGroupUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderTableUoWFactory() commands.OrderTableUoWFactory {
	return FuncOrderTableUoWFactory(func() commands.OrderTableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// HTTPHandlers wires every use case behind the API.
func (c *CompositionRoot) HTTPHandlers() kitchenposhttp.Handlers {
	return kitchenposhttp.Handlers{
		CreateProduct:      commands.NewCreateProductCommandHandler(c.productUoWFactory(), c.policy),
		ChangeProductPrice: commands.NewChangeProductPriceCommandHandler(c.productUoWFactory()),
		GetAllProducts:     queries.NewGetAllProductsQueryHandler(c.gormDB),

		CreateMenuGroup:  commands.NewCreateMenuGroupCommandHandler(c.menuGroupUoWFactory()),
		GetAllMenuGroups: queries.NewGetAllMenuGroupsQueryHandler(c.gormDB),

		CreateMenu:      commands.NewCreateMenuCommandHandler(c.menuUoWFactory(), c.policy),
		ChangeMenuPrice: commands.NewChangeMenuPriceCommandHandler(c.menuUoWFactory()),
		DisplayMenu:     commands.NewDisplayMenuCommandHandler(c.menuUoWFactory()),
		HideMenu:        commands.NewHideMenuCommandHandler(c.menuUoWFactory()),
		GetAllMenus:     queries.NewGetAllMenusQueryHandler(c.gormDB),

		CreateOrderTable:     commands.NewCreateOrderTableCommandHandler(c.orderTableUoWFactory()),
		SitOrderTable:        commands.NewSitOrderTableCommandHandler(c.orderTableUoWFactory()),
		ClearOrderTable:      commands.NewClearOrderTableCommandHandler(c.orderTableUoWFactory()),
		ChangeNumberOfGuests: commands.NewChangeNumberOfGuestsCommandHandler(c.orderTableUoWFactory()),
		GetAllOrderTables:    queries.NewGetAllOrderTablesQueryHandler(c.gormDB),

		CreateOrder:      commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		AcceptOrder:      commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.dispatcher),
		ServeOrder:       commands.NewServeOrderCommandHandler(c.orderUoWFactory()),
		StartDelivery:    commands.NewStartDeliveryCommandHandler(c.orderUoWFactory()),
		CompleteDelivery: commands.NewCompleteDeliveryCommandHandler(c.orderUoWFactory()),
		CompleteOrder:    commands.NewCompleteOrderCommandHandler(c.orderUoWFactory()),
		GetAllOrders:     queries.NewGetAllOrdersQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := kitchenposhttp.NewServer(c.HTTPHandlers(), c.logger)
	return kitchenposhttp.NewRouter(server, c.metrics, c.metrics.Handler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	audit := jobs.NewMenuAuditJob(
		commands.NewHideOverpricedMenusCommandHandler(c.menuUoWFactory()),
		c.metrics,
		c.cfg.MenuAuditSchedule,
		c.logger,
	)
	return jobs.NewJobManager(audit)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncMenuGroupUoWFactory func() commands.MenuGroupUoW

func (f FuncMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderTableUoWFactory func() commands.OrderTableUoW

func (f FuncOrderTableUoWFactory) Create() commands.OrderTableUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

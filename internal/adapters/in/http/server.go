// Package http exposes the point-of-sale use cases over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// Handler is a command or query handler as the server sees it.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[C any, R any] func(ctx context.Context, cmd C) (R, error)

func (f HandlerFunc[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	return f(ctx, cmd)
}

// Handlers are the use cases behind the routes. Every field must be set.
type Handlers struct {
	CreateProduct      Handler[commands.CreateProductCommand, *product.Product]
	ChangeProductPrice Handler[commands.ChangeProductPriceCommand, *product.Product]
	GetAllProducts     Handler[queries.GetAllProductsQuery, []queries.GetAllProductsQueryResponse]

	CreateMenuGroup  Handler[commands.CreateMenuGroupCommand, *menugroup.MenuGroup]
	GetAllMenuGroups Handler[queries.GetAllMenuGroupsQuery, []queries.GetAllMenuGroupsQueryResponse]

	CreateMenu      Handler[commands.CreateMenuCommand, *menu.Menu]
	ChangeMenuPrice Handler[commands.ChangeMenuPriceCommand, *menu.Menu]
	DisplayMenu     Handler[commands.DisplayMenuCommand, *menu.Menu]
	HideMenu        Handler[commands.HideMenuCommand, *menu.Menu]
	GetAllMenus     Handler[queries.GetAllMenusQuery, []queries.GetAllMenusQueryResponse]

	CreateOrderTable     Handler[commands.CreateOrderTableCommand, *ordertable.OrderTable]
	SitOrderTable        Handler[commands.SitOrderTableCommand, *ordertable.OrderTable]
	ClearOrderTable      Handler[commands.ClearOrderTableCommand, *ordertable.OrderTable]
	ChangeNumberOfGuests Handler[commands.ChangeNumberOfGuestsCommand, *ordertable.OrderTable]
	GetAllOrderTables    Handler[queries.GetAllOrderTablesQuery, []queries.GetAllOrderTablesQueryResponse]

	CreateOrder      Handler[commands.CreateOrderCommand, *order.Order]
	AcceptOrder      Handler[commands.AcceptOrderCommand, *order.Order]
	ServeOrder       Handler[commands.ServeOrderCommand, *order.Order]
	StartDelivery    Handler[commands.StartDeliveryCommand, *order.Order]
	CompleteDelivery Handler[commands.CompleteDeliveryCommand, *order.Order]
	CompleteOrder    Handler[commands.CompleteOrderCommand, *order.Order]
	GetAllOrders     Handler[queries.GetAllOrdersQuery, []queries.GetAllOrdersQueryResponse]
}

// Server translates HTTP requests into commands and queries and their results into JSON.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id/price", s.ChangeProductPrice)
	api.GET("/products", s.GetProducts)

	api.POST("/menu-groups", s.CreateMenuGroup)
	api.GET("/menu-groups", s.GetMenuGroups)

	api.POST("/menus", s.CreateMenu)
	api.PUT("/menus/:id/price", s.ChangeMenuPrice)
	api.PUT("/menus/:id/display", s.DisplayMenu)
	api.PUT("/menus/:id/hide", s.HideMenu)
	api.GET("/menus", s.GetMenus)

	api.POST("/order-tables", s.CreateOrderTable)
	api.PUT("/order-tables/:id/sit", s.SitOrderTable)
	api.PUT("/order-tables/:id/clear", s.ClearOrderTable)
	api.PUT("/order-tables/:id/number-of-guests", s.ChangeNumberOfGuests)
	api.GET("/order-tables", s.GetOrderTables)

	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id/accept", s.AcceptOrder)
	api.PUT("/orders/:id/serve", s.ServeOrder)
	api.PUT("/orders/:id/start-delivery", s.StartDelivery)
	api.PUT("/orders/:id/complete-delivery", s.CompleteDelivery)
	api.PUT("/orders/:id/complete", s.CompleteOrder)
	api.GET("/orders", s.GetOrders)
}

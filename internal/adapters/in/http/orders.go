package http

import (
	"fmt"
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const uncompletedStatusFilter = "uncompleted"

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	var tableID *kernel.UUID
	if req.OrderTableID != nil && *req.OrderTableID != "" {
		id, err := parseID("orderTableId", *req.OrderTableID)
		if err != nil {
			return s.fail(c, err)
		}
		tableID = &id
	}

	lines := make([]commands.OrderLineRequest, len(req.OrderLineItems))
	for i, li := range req.OrderLineItems {
		menuID, err := parseID("menuId", li.MenuID)
		if err != nil {
			return s.fail(c, err)
		}
		lines[i] = commands.OrderLineRequest{MenuID: menuID, Quantity: li.Quantity, Price: li.Price}
	}

	cmd, err := commands.NewCreateOrderCommand(req.Type, lines, tableID, req.DeliveryAddress)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return created(c, "/api/orders/"+o.ID().String(), orderResponse(o))
}

func (s *Server) AcceptOrder(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewAcceptOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.handlers.AcceptOrder.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) ServeOrder(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewServeOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.handlers.ServeOrder.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) StartDelivery(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewStartDeliveryCommand(id)
		if err != nil {
			return nil, err
		}
		return s.handlers.StartDelivery.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) CompleteDelivery(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewCompleteDeliveryCommand(id)
		if err != nil {
			return nil, err
		}
		return s.handlers.CompleteDelivery.Handle(c.Request().Context(), cmd)
	})
}

func (s *Server) CompleteOrder(c echo.Context) error {
	return s.transition(c, func(id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewCompleteOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd)
	})
}

// GetOrders handles GET /api/orders. ?status=uncompleted leaves out completed orders.
func (s *Server) GetOrders(c echo.Context) error {
	filter := c.QueryParam("status")
	if filter != "" && filter != uncompletedStatusFilter {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("unsupported filter %q", filter)))
	}

	query := queries.NewGetAllOrdersQuery(filter == uncompletedStatusFilter)
	orders, err := s.handlers.GetAllOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderQueryResponse(o)
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) transition(c echo.Context, apply func(kernel.UUID) (*order.Order, error)) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := apply(id)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderResponse(o))
}

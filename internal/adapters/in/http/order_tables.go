package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/ordertable"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateOrderTable(c echo.Context) error {
	var req OrderTableRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderTableCommand(req.Name)
	if err != nil {
		return s.fail(c, err)
	}

	t, err := s.handlers.CreateOrderTable.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return created(c, "/api/order-tables/"+t.ID().String(), orderTableResponse(t))
}

func (s *Server) SitOrderTable(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSitOrderTableCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	return s.orderTableResult(c)(s.handlers.SitOrderTable.Handle(c.Request().Context(), cmd))
}

func (s *Server) ClearOrderTable(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewClearOrderTableCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	return s.orderTableResult(c)(s.handlers.ClearOrderTable.Handle(c.Request().Context(), cmd))
}

func (s *Server) ChangeNumberOfGuests(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req NumberOfGuestsRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeNumberOfGuestsCommand(id, req.NumberOfGuests)
	if err != nil {
		return s.fail(c, err)
	}

	return s.orderTableResult(c)(s.handlers.ChangeNumberOfGuests.Handle(c.Request().Context(), cmd))
}

func (s *Server) GetOrderTables(c echo.Context) error {
	tables, err := s.handlers.GetAllOrderTables.Handle(c.Request().Context(), queries.NewGetAllOrderTablesQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderTableResponse, len(tables))
	for i, t := range tables {
		response[i] = OrderTableResponse{
			ID:             t.ID.String(),
			Name:           t.Name,
			NumberOfGuests: t.NumberOfGuests,
			Occupied:       t.Occupied,
		}
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) orderTableResult(c echo.Context) func(*ordertable.OrderTable, error) error {
	return func(t *ordertable.OrderTable, err error) error {
		if err != nil {
			return s.fail(c, err)
		}
		return c.JSON(http.StatusOK, orderTableResponse(t))
	}
}

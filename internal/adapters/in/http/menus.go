package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

func (s *Server) CreateMenuGroup(c echo.Context) error {
	var req MenuGroupRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateMenuGroupCommand(req.Name)
	if err != nil {
		return s.fail(c, err)
	}

	g, err := s.handlers.CreateMenuGroup.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return created(c, "/api/menu-groups/"+g.ID().String(), menuGroupResponse(g))
}

func (s *Server) GetMenuGroups(c echo.Context) error {
	groups, err := s.handlers.GetAllMenuGroups.Handle(c.Request().Context(), queries.NewGetAllMenuGroupsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]MenuGroupResponse, len(groups))
	for i, g := range groups {
		response[i] = MenuGroupResponse{ID: g.ID.String(), Name: g.Name}
	}
	return c.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/menus.
func (s *Server) CreateMenu(c echo.Context) error {
	var req MenuRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	groupID, err := parseID("menuGroupId", req.MenuGroupID)
	if err != nil {
		return s.fail(c, err)
	}

	lines := make([]services.MenuLine, len(req.MenuProducts))
	for i, mp := range req.MenuProducts {
		productID, idErr := parseID("productId", mp.ProductID)
		if idErr != nil {
			return s.fail(c, idErr)
		}
		lines[i] = services.MenuLine{ProductID: productID, Quantity: mp.Quantity}
	}

	cmd, err := commands.NewCreateMenuCommand(req.Name, req.Price, req.Displayed, groupID, lines)
	if err != nil {
		return s.fail(c, err)
	}

	m, err := s.handlers.CreateMenu.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return created(c, "/api/menus/"+m.ID().String(), menuResponse(m))
}

func (s *Server) ChangeMenuPrice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req PriceRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeMenuPriceCommand(id, req.Price)
	if err != nil {
		return s.fail(c, err)
	}

	return s.menuResult(c)(s.handlers.ChangeMenuPrice.Handle(c.Request().Context(), cmd))
}

func (s *Server) DisplayMenu(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDisplayMenuCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	return s.menuResult(c)(s.handlers.DisplayMenu.Handle(c.Request().Context(), cmd))
}

func (s *Server) HideMenu(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewHideMenuCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	return s.menuResult(c)(s.handlers.HideMenu.Handle(c.Request().Context(), cmd))
}

func (s *Server) GetMenus(c echo.Context) error {
	menus, err := s.handlers.GetAllMenus.Handle(c.Request().Context(), queries.NewGetAllMenusQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]MenuResponse, len(menus))
	for i, m := range menus {
		response[i] = menuQueryResponse(m)
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) menuResult(c echo.Context) func(*menu.Menu, error) error {
	return func(m *menu.Menu, err error) error {
		if err != nil {
			return s.fail(c, err)
		}
		return c.JSON(http.StatusOK, menuResponse(m))
	}
}

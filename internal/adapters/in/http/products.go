package http

import (
	"net/http"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, req.Price)
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.handlers.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return created(c, "/api/products/"+p.ID().String(), productResponse(p))
}

// ChangeProductPrice handles PUT /api/products/:id/price.
func (s *Server) ChangeProductPrice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req PriceRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeProductPriceCommand(id, req.Price)
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.handlers.ChangeProductPrice.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, productResponse(p))
}

// GetProducts handles GET /api/products.
func (s *Server) GetProducts(c echo.Context) error {
	products, err := s.handlers.GetAllProducts.Handle(c.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = productQueryResponse(p)
	}
	return c.JSON(http.StatusOK, response)
}

func created(c echo.Context, location string, body any) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, body)
}

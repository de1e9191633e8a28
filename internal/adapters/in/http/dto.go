package http

import (
	"time"

	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// Requests

type ProductRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

type PriceRequest struct {
	Price *decimal.Decimal `json:"price"`
}

type MenuGroupRequest struct {
	Name string `json:"name"`
}

type MenuProductRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type MenuRequest struct {
	Name         string               `json:"name"`
	Price        *decimal.Decimal     `json:"price"`
	Displayed    bool                 `json:"displayed"`
	MenuGroupID  string               `json:"menuGroupId"`
	MenuProducts []MenuProductRequest `json:"menuProducts"`
}

type OrderTableRequest struct {
	Name string `json:"name"`
}

type NumberOfGuestsRequest struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

type OrderLineItemRequest struct {
	MenuID   string           `json:"menuId"`
	Quantity int64            `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

type OrderRequest struct {
	Type            string                 `json:"type"`
	OrderTableID    *string                `json:"orderTableId"`
	DeliveryAddress string                 `json:"deliveryAddress"`
	OrderLineItems  []OrderLineItemRequest `json:"orderLineItems"`
}

// Responses. Prices are rendered as decimal strings.

type ProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type MenuGroupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MenuProductResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type MenuResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Price        decimal.Decimal       `json:"price"`
	Displayed    bool                  `json:"displayed"`
	MenuGroupID  string                `json:"menuGroupId"`
	MenuProducts []MenuProductResponse `json:"menuProducts"`
}

type OrderTableResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Occupied       bool   `json:"occupied"`
}

type OrderLineItemResponse struct {
	ID       string          `json:"id"`
	MenuID   string          `json:"menuId"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID              string                  `json:"id"`
	Type            string                  `json:"type"`
	Status          string                  `json:"status"`
	OrderedAt       time.Time               `json:"orderDateTime"`
	DeliveryAddress string                  `json:"deliveryAddress,omitempty"`
	OrderTableID    *string                 `json:"orderTableId,omitempty"`
	OrderLineItems  []OrderLineItemResponse `json:"orderLineItems"`
}

func productResponse(p *product.Product) ProductResponse {
	return ProductResponse{ID: p.ID().String(), Name: p.Name().String(), Price: p.Price().Amount()}
}

func productQueryResponse(p queries.GetAllProductsQueryResponse) ProductResponse {
	return ProductResponse{ID: p.ID.String(), Name: p.Name, Price: p.Price}
}

func menuGroupResponse(g *menugroup.MenuGroup) MenuGroupResponse {
	return MenuGroupResponse{ID: g.ID().String(), Name: g.Name()}
}

func menuResponse(m *menu.Menu) MenuResponse {
	lines := make([]MenuProductResponse, 0, len(m.Products()))
	for _, mp := range m.Products() {
		lines = append(lines, MenuProductResponse{
			ID:        mp.ID().String(),
			ProductID: mp.ProductID().String(),
			Quantity:  mp.Quantity(),
			Price:     mp.Price().Amount(),
		})
	}
	return MenuResponse{
		ID:           m.ID().String(),
		Name:         m.Name().String(),
		Price:        m.Price().Amount(),
		Displayed:    m.IsDisplayed(),
		MenuGroupID:  m.MenuGroupID().String(),
		MenuProducts: lines,
	}
}

func menuQueryResponse(m queries.GetAllMenusQueryResponse) MenuResponse {
	lines := make([]MenuProductResponse, 0, len(m.Products))
	for _, mp := range m.Products {
		lines = append(lines, MenuProductResponse{
			ID:        mp.ID.String(),
			ProductID: mp.ProductID.String(),
			Quantity:  mp.Quantity,
			Price:     mp.Price,
		})
	}
	return MenuResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		Price:        m.Price,
		Displayed:    m.Displayed,
		MenuGroupID:  m.MenuGroupID.String(),
		MenuProducts: lines,
	}
}

func orderTableResponse(t *ordertable.OrderTable) OrderTableResponse {
	return OrderTableResponse{
		ID:             t.ID().String(),
		Name:           t.Name(),
		NumberOfGuests: t.NumberOfGuests(),
		Occupied:       t.IsOccupied(),
	}
}

func orderResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineItemResponse, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		lines = append(lines, OrderLineItemResponse{
			ID:       li.ID().String(),
			MenuID:   li.MenuID().String(),
			Quantity: li.Quantity(),
			Price:    li.Price().Amount(),
		})
	}

	resp := OrderResponse{
		ID:              o.ID().String(),
		Type:            o.Type().String(),
		Status:          o.Status().String(),
		OrderedAt:       o.OrderedAt(),
		DeliveryAddress: o.DeliveryAddress(),
		OrderLineItems:  lines,
	}
	if tableID := o.OrderTableID(); tableID != nil {
		id := tableID.String()
		resp.OrderTableID = &id
	}
	return resp
}

func orderQueryResponse(o queries.GetAllOrdersQueryResponse) OrderResponse {
	lines := make([]OrderLineItemResponse, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		lines = append(lines, OrderLineItemResponse{
			ID:       li.ID.String(),
			MenuID:   li.MenuID.String(),
			Quantity: li.Quantity,
			Price:    li.Price,
		})
	}

	resp := OrderResponse{
		ID:              o.ID.String(),
		Type:            o.Type.String(),
		Status:          o.Status.String(),
		OrderedAt:       o.OrderedAt,
		DeliveryAddress: o.DeliveryAddress,
		OrderLineItems:  lines,
	}
	if o.OrderTableID != nil {
		id := o.OrderTableID.String()
		resp.OrderTableID = &id
	}
	return resp
}

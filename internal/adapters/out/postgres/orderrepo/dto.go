// Package orderrepo maps order aggregates to the orders and order_line_items tables.
package orderrepo

import (
	"sort"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Status and type are stored as their
// numeric values.
type OrderDTO struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Type            int                `gorm:"type:smallint;not null"`
	Status          int                `gorm:"type:smallint;not null;index"`
	OrderedAt       time.Time          `gorm:"not null"`
	DeliveryAddress string             `gorm:"type:varchar(255)"`
	OrderTableID    *uuid.UUID         `gorm:"type:uuid;index"`
	LineItems       []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO keeps the menu price as it was when the order was placed.
type OrderLineItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuID   uuid.UUID       `gorm:"type:uuid;not null"`
	Position int             `gorm:"type:int;not null"`
	Quantity int64           `gorm:"type:bigint;not null"`
	Price    decimal.Decimal `gorm:"type:decimal(19,2);not null"`
}

func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var tableID *uuid.UUID
	if id := o.OrderTableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	items := make([]OrderLineItemDTO, 0, len(o.LineItems()))
	for i, li := range o.LineItems() {
		items = append(items, OrderLineItemDTO{
			ID:       li.ID().Bytes(),
			OrderID:  orderID,
			MenuID:   li.MenuID().Bytes(),
			Position: i,
			Quantity: li.Quantity(),
			Price:    li.Price().Amount(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		Type:            int(o.Type()),
		Status:          int(o.Status()),
		OrderedAt:       o.OrderedAt(),
		DeliveryAddress: o.DeliveryAddress(),
		OrderTableID:    tableID,
		LineItems:       items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.OrderTableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.OrderTableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}
		tableID = &tID
	}

	sort.SliceStable(dto.LineItems, func(i, j int) bool {
		return dto.LineItems[i].Position < dto.LineItems[j].Position
	})

	items := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.Type),
		order.Status(dto.Status),
		dto.OrderedAt.UTC(),
		items,
		dto.DeliveryAddress,
		tableID,
	)
}

func lineItemToDomain(dto OrderLineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.NewLineItem(id, menuID, dto.Quantity, price)
}

package queries

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns orders oldest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	stmt := h.db.WithContext(ctx).
		Table("orders").
		Select("id, type, status, ordered_at, delivery_address, order_table_id").
		Order("ordered_at, id")
	if query.OnlyUncompleted() {
		stmt = stmt.Where("status <> ?", order.Completed)
	}

	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	positions := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id        uuid.UUID
			tableID   *uuid.UUID
			orderType int
			status    int
			orderedAt time.Time
			address   string
		)
		if err = rows.Scan(&id, &orderType, &status, &orderedAt, &address, &tableID); err != nil {
			return nil, err
		}

		o := GetAllOrdersQueryResponse{
			ID:              kernel.RestoreUUID(id),
			Type:            order.Type(orderType),
			Status:          order.Status(status),
			OrderedAt:       orderedAt,
			DeliveryAddress: address,
			LineItems:       make([]OrderLineItemResponse, 0),
		}
		if tableID != nil {
			t := kernel.RestoreUUID(*tableID)
			o.OrderTableID = &t
		}

		positions[id] = len(orders)
		ids = append(ids, id)
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return orders, nil
	}

	lineRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			menu_id,
			quantity,
			price
		FROM order_line_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			id, orderID, menuID uuid.UUID
			line                OrderLineItemResponse
		)
		if err = lineRows.Scan(&id, &orderID, &menuID, &line.Quantity, &line.Price); err != nil {
			return nil, err
		}
		line.ID = kernel.RestoreUUID(id)
		line.MenuID = kernel.RestoreUUID(menuID)

		if i, ok := positions[orderID]; ok {
			orders[i].LineItems = append(orders[i].LineItems, line)
		}
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

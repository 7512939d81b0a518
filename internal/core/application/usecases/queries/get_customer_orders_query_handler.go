package queries

import (
	"context"
	"fmt"
	"strings"

	"mangoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists a customer's orders with their lines.
//
// Orders are read with one statement and their lines with a second one, so a page costs
// two round trips regardless of its size.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns one page of orders, an empty slice when nothing matches.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]CustomerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (h GetCustomerOrdersQueryHandler) orders(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]CustomerOrderResponse, error) {
	conditions := []string{"customer_id = ?"}
	args := []any{query.CustomerID().Bytes()}

	if status := query.Status(); status.Validate() == nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}
	if itemType := query.ItemType(); itemType != "" {
		conditions = append(conditions, "? = ANY(item_types)")
		args = append(args, itemType.String())
	}
	if from := query.From(); from != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *from)
	}
	if to := query.To(); to != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *to)
	}

	direction := "DESC"
	if query.Ascending() {
		direction = "ASC"
	}
	args = append(args, query.Limit(), query.Skip())

	// sort column comes from a fixed set, see sortColumn
	statement := fmt.Sprintf(`
		SELECT
			id,
			number,
			delivery_method,
			status,
			total_amount,
			item_types,
			destination_airport_code,
			destination_region,
			destination_zip,
			payment_transaction_id,
			created_at,
			updated_at
		FROM orders
		WHERE %s
		ORDER BY %s %s, id
		LIMIT ? OFFSET ?
	`, strings.Join(conditions, " AND "), query.SortColumn(), direction)

	rows, err := h.db.WithContext(ctx).Raw(statement, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]CustomerOrderResponse, 0)
	for rows.Next() {
		var (
			resp      CustomerOrderResponse
			id        uuid.UUID
			total     decimal.Decimal
			itemTypes pq.StringArray
		)

		if err = rows.Scan(
			&id,
			&resp.Number,
			&resp.DeliveryMethod,
			&resp.Status,
			&total,
			&itemTypes,
			&resp.AirportCode,
			&resp.Region,
			&resp.Zipcode,
			&resp.PaymentTransactionID,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.TotalAmount, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		resp.ItemTypes = []string(itemTypes)
		resp.Items = make([]CustomerOrderItem, 0)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (h GetCustomerOrdersQueryHandler) attachItems(ctx context.Context, orders []CustomerOrderResponse) error {
	ids := make([]uuid.UUID, len(orders))
	byID := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID.Bytes()
		byID[ids[i]] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			item_type,
			quantity,
			unit_price,
			line_total
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			item      CustomerOrderItem
			unitPrice decimal.Decimal
			lineTotal decimal.Decimal
		)
		if err = rows.Scan(&orderID, &item.ItemType, &item.Quantity, &unitPrice, &lineTotal); err != nil {
			return err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return err
		}
		if item.LineTotal, err = kernel.NewMoney(lineTotal); err != nil {
			return err
		}

		if i, ok := byID[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

package queries

import (
	"context"

	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderBacklogQueryHandler counts processing orders per delivery method.
type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) (GetOrderBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			delivery_method,
			COUNT(*)
		FROM orders
		WHERE status = ?
		GROUP BY delivery_method
	`, order.Processing.String()).Rows()
	if err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var method string
		var count int64
		if err = rows.Scan(&method, &count); err != nil {
			return GetOrderBacklogQueryResponse{}, err
		}
		counts[method] = count
	}
	if err = rows.Err(); err != nil {
		return GetOrderBacklogQueryResponse{}, err
	}

	resp := GetOrderBacklogQueryResponse{}
	for _, method := range []delivery.Method{delivery.Pickup, delivery.Doorstep} {
		count := counts[method.String()]
		resp.Entries = append(resp.Entries, BacklogEntry{DeliveryMethod: method.String(), Count: count})
		resp.Total += count
	}
	return resp, nil
}

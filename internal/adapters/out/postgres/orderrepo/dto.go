// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"time"

	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses and delivery methods are stored by their wire names so reporting queries can
// read them without the domain enums.
type OrderDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number               string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryMethod       string          `gorm:"type:varchar(16);not null;index"`
	Destination          DestinationDTO  `gorm:"embedded;embeddedPrefix:destination_"`
	ItemTypes            pq.StringArray  `gorm:"type:text[]"`
	TotalAmount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status               string          `gorm:"type:varchar(16);not null;index"`
	PaymentTransactionID string          `gorm:"type:varchar(128)"`
	CreatedAt            time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt            time.Time       `gorm:"not null;autoUpdateTime:false"`
	Items                []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DestinationDTO is embedded in the orders table. Pickup orders fill the airport columns,
// doorstep orders the address columns.
type DestinationDTO struct {
	AirportCode string `gorm:"type:varchar(16)"`
	AirportName string `gorm:"type:varchar(255)"`
	AirportZip  string `gorm:"type:varchar(16)"`
	Address     string `gorm:"type:text"`
	Region      string `gorm:"type:varchar(255)"`
	Zip         string `gorm:"type:varchar(16)"`
}

// ItemDTO represents one priced order line.
type ItemDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ItemType  string          `gorm:"type:varchar(32);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	dest := o.Destination()

	items := make([]ItemDTO, 0, len(o.Items()))
	var itemTypes pq.StringArray
	for i, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			Position:  i,
			ItemType:  item.ItemType().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
			LineTotal: item.LineTotal().Decimal(),
		})
		if !containsString(itemTypes, item.ItemType().String()) {
			itemTypes = append(itemTypes, item.ItemType().String())
		}
	}

	return OrderDTO{
		ID:             orderID,
		Number:         o.Number(),
		CustomerID:     o.CustomerID().Bytes(),
		DeliveryMethod: o.Method().String(),
		Destination: DestinationDTO{
			AirportCode: dest.AirportCode(),
			AirportName: dest.AirportName(),
			AirportZip:  dest.AirportZip(),
			Address:     dest.Address(),
			Region:      dest.Region(),
			Zip:         dest.Zip(),
		},
		ItemTypes:            itemTypes,
		TotalAmount:          o.Total().Decimal(),
		Status:               o.Status().String(),
		PaymentTransactionID: o.PaymentTransactionID(),
		CreatedAt:            o.CreatedAt(),
		UpdatedAt:            o.UpdatedAt(),
		Items:                items,
	}
}

// toDomain converts a database DTO with preloaded items to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	method, err := delivery.ParseMethod(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}
	dest, err := order.RestoreDestination(method,
		dto.Destination.AirportCode, dto.Destination.AirportName, dto.Destination.AirportZip,
		dto.Destination.Address, dto.Destination.Region, dto.Destination.Zip)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.Restore(order.Snapshot{
		ID:                   id,
		Number:               dto.Number,
		CustomerID:           customerID,
		Destination:          dest,
		Items:                items,
		Total:                total,
		Status:               status,
		PaymentTransactionID: dto.PaymentTransactionID,
		CreatedAt:            dto.CreatedAt.UTC(),
		UpdatedAt:            dto.UpdatedAt.UTC(),
	})
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	unitPrice, unitErr := kernel.NewMoney(dto.UnitPrice)
	lineTotal, lineErr := kernel.NewMoney(dto.LineTotal)
	if err := errors.Join(unitErr, lineErr); err != nil {
		return order.Item{}, err
	}
	return order.RestoreItem(delivery.ItemType(dto.ItemType), dto.Quantity, unitPrice, lineTotal)
}

func containsString(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

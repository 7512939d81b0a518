package http

import (
	"context"
	"log/slog"

	"mangoshop/internal/core/application/usecases/commands"
	"mangoshop/internal/core/application/usecases/queries"
	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/core/domain/model/delivery"
	"mangoshop/internal/core/domain/model/kernel"
	"mangoshop/internal/core/domain/model/order"
	"mangoshop/internal/core/domain/services"
	"mangoshop/internal/generated/servers"
	"mangoshop/internal/pkg/metrics"
)

// DeliveryEngine answers catalog, coverage and pricing questions.
type DeliveryEngine interface {
	ListAirports() []coverage.Airport
	ListRegions() []string
	ListItemTypes() []delivery.ItemType
	AllowedQuantities(method string) ([]int, error)
	ResolveZip(zip, region string) coverage.Resolution
	PickupPrice(itemType string, quantity int) (kernel.Money, error)
	DoorstepPrice(region string, quantity int) (kernel.Money, error)
	QuoteOrder(req services.QuoteRequest) delivery.Quote
}

type OrderPlacer interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
}

type OrderCanceller interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
}

type OrderStatusUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
}

type CustomerOrdersReader interface {
	Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.CustomerOrderResponse, error)
}

type OrderBacklogReader interface {
	Handle(ctx context.Context, query queries.GetOrderBacklogQuery) (queries.GetOrderBacklogQueryResponse, error)
}

// UseCases groups the application handlers served over HTTP.
type UseCases struct {
	// Command handlers
	PlaceOrder        OrderPlacer
	CancelOrder       OrderCanceller
	UpdateOrderStatus OrderStatusUpdater

	// Query handlers
	CustomerOrders CustomerOrdersReader
	OrderBacklog   OrderBacklogReader
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	engine   DeliveryEngine
	useCases UseCases
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the delivery engine and the order use cases.
func NewServer(
	engine DeliveryEngine,
	useCases UseCases,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		engine:   engine,
		useCases: useCases,
		metrics:  m,
		logger:   logger.With("component", "http_server"),
	}
}

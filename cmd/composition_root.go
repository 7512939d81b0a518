package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	httpin "mangoshop/internal/adapters/in/http"
	"mangoshop/internal/adapters/out/payment"
	"mangoshop/internal/adapters/out/postgres"
	"mangoshop/internal/adapters/out/refdata/xlsx"
	"mangoshop/internal/adapters/out/refdata/yamlsource"
	"mangoshop/internal/core/application/usecases/commands"
	"mangoshop/internal/core/application/usecases/queries"
	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/core/domain/services"
	"mangoshop/internal/core/ports"
	"mangoshop/internal/jobs"
	"mangoshop/internal/pkg/metrics"

	"gorm.io/gorm"
)

const paymentClientTimeout = 10 * time.Second

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	engine     *services.DeliveryEngine
	gateway    ports.PaymentGateway
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewCompositionRoot loads the reference data and builds the shared dependencies.
// A reference data failure is returned and is fatal to the process.
func NewCompositionRoot(ctx context.Context, configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	engine, err := loadDeliveryEngine(ctx, configs.AirportsFile, configs.CoverageFile)
	if err != nil {
		return CompositionRoot{}, err
	}

	gateway, err := newPaymentGateway(configs, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     engine,
		gateway:    gateway,
		metrics:    metrics.New(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) DeliveryEngine() *services.DeliveryEngine {
	return c.engine
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	handler := commands.NewPlaceOrderCommandHandler(c.engine, c.gateway, c.orderUoWFactory(), c.logger)
	return &handler
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	handler := commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	handler := commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.engine,
		httpin.UseCases{
			PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
			CancelOrder:       c.CreateCancelOrderCommandHandler(),
			UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
			CustomerOrders:    c.CreateGetCustomerOrdersQueryHandler(),
			OrderBacklog:      c.CreateGetOrderBacklogQueryHandler(),
		},
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderBacklogQueryHandler(),
		c.metrics,
		c.configs.BacklogReportSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

func loadDeliveryEngine(ctx context.Context, airportsFile, coverageFile string) (*services.DeliveryEngine, error) {
	var airportSource ports.AirportSource = xlsx.NewAirportWorkbook(airportsFile)
	if isYAML(airportsFile) {
		airportSource = yamlsource.New(airportsFile)
	}
	var coverageSource ports.CoverageSource = xlsx.NewCoverageWorkbook(coverageFile)
	if isYAML(coverageFile) {
		coverageSource = yamlsource.New(coverageFile)
	}

	airports, err := airportSource.LoadAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("load airports from %s: %w", airportsFile, err)
	}
	tables, err := coverageSource.LoadRegionTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("load coverage from %s: %w", coverageFile, err)
	}

	directory, err := coverage.NewDirectory(airports, tables)
	if err != nil {
		return nil, fmt.Errorf("build coverage directory: %w", err)
	}
	return services.NewDeliveryEngine(directory), nil
}

func newPaymentGateway(configs Config, logger *slog.Logger) (ports.PaymentGateway, error) {
	if strings.TrimSpace(configs.PaymentGatewayURL) == "" {
		logger.Warn("PAYMENT_GATEWAY_URL is not set, charges go to the sandbox gateway")
		return payment.NewSandboxGateway(), nil
	}
	return payment.NewHTTPGateway(
		configs.PaymentGatewayURL,
		configs.PaymentGatewayAPIKey,
		&http.Client{Timeout: paymentClientTimeout},
		logger,
	)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

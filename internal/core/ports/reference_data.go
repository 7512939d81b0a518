package ports

import (
	"context"

	"mangoshop/internal/core/domain/model/coverage"
)

// AirportSource reads the raw airport directory.
type AirportSource interface {
	LoadAirports(ctx context.Context) ([]coverage.AirportRow, error)
}

// CoverageSource reads the raw doorstep region tables in their source order.
type CoverageSource interface {
	LoadRegionTables(ctx context.Context) ([]coverage.RegionTable, error)
}

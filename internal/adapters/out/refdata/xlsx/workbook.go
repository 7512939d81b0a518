// Package xlsx reads the delivery reference workbooks: the airport destination list and
// the region coverage workbook with one sheet per region.
package xlsx

import (
	"context"
	"fmt"
	"strings"

	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

// Airport workbook header names.
const (
	HeaderAirportName = "AIRPORT LIST"
	HeaderAirportCode = "AIRPORT CODE"
	HeaderZipCode     = "ZIP CODE"
)

// AirportWorkbook reads pickup airports from the first sheet of a workbook whose first row
// holds the AIRPORT LIST, AIRPORT CODE and ZIP CODE headers. Other columns are ignored.
type AirportWorkbook struct {
	path string
}

func NewAirportWorkbook(path string) *AirportWorkbook {
	return &AirportWorkbook{path: path}
}

func (w *AirportWorkbook) LoadAirports(ctx context.Context) ([]coverage.AirportRow, error) {
	f, err := open(ctx, w.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("airport workbook %s has no sheets", w.path)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], w.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("airport workbook %s: sheet %q is empty", w.path, sheets[0])
	}

	columns, err := headerColumns(rows[0], HeaderAirportName, HeaderAirportCode, HeaderZipCode)
	if err != nil {
		return nil, fmt.Errorf("airport workbook %s: %w", w.path, err)
	}

	airports := make([]coverage.AirportRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		airports = append(airports, coverage.AirportRow{
			Name: cell(row, columns[HeaderAirportName]),
			Code: cell(row, columns[HeaderAirportCode]),
			Zip:  cell(row, columns[HeaderZipCode]),
		})
	}
	return airports, nil
}

// CoverageWorkbook reads doorstep region tables, one per sheet, in sheet order.
// The sheet name is the region key. The first row of every sheet is a header and is
// skipped; every other non-empty cell is a candidate ZIP code.
type CoverageWorkbook struct {
	path string
}

func NewCoverageWorkbook(path string) *CoverageWorkbook {
	return &CoverageWorkbook{path: path}
}

func (w *CoverageWorkbook) LoadRegionTables(ctx context.Context) ([]coverage.RegionTable, error) {
	f, err := open(ctx, w.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	tables := make([]coverage.RegionTable, 0, len(sheets))
	for _, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, w.path, err)
		}
		if len(rows) > 0 {
			rows = rows[1:]
		}
		tables = append(tables, coverage.RegionTable{Key: sheet, Rows: rows})
	}
	return tables, nil
}

func open(ctx context.Context, path string) (*excelize.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return nil, errs.NewValueIsRequiredError("workbook path")
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return f, nil
}

// headerColumns maps each wanted header to its column index. Headers are matched after
// trimming, ignoring case.
func headerColumns(header []string, wanted ...string) (map[string]int, error) {
	columns := make(map[string]int, len(wanted))
	for i, name := range header {
		for _, w := range wanted {
			if strings.EqualFold(strings.TrimSpace(name), w) {
				if _, dup := columns[w]; !dup {
					columns[w] = i
				}
			}
		}
	}

	var missing []string
	for _, w := range wanted {
		if _, ok := columns[w]; !ok {
			missing = append(missing, w)
		}
	}
	if len(missing) > 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause(
			"header", fmt.Errorf("missing columns %s", strings.Join(missing, ", ")))
	}
	return columns, nil
}

// cell returns row[i], or "" when the row is shorter. GetRows trims trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

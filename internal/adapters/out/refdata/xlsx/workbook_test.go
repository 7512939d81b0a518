package xlsx_test

import (
	"path/filepath"
	"testing"

	"mangoshop/internal/adapters/out/refdata/xlsx"
	"mangoshop/internal/core/domain/model/coverage"
	"mangoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheets map[string][][]any, order ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			axis, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, axis, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestAirportWorkbook_LoadAirports(t *testing.T) {
	t.Run("should read airports by header name", func(t *testing.T) {
		path := writeWorkbook(t, map[string][][]any{
			"Airports": {
				{"STATES", "AIRPORT LIST", "AIRPORT CODE", "ZIP CODE"},
				{"TX", "George Bush Intercontinental", "IAH", 77032},
				{"IL", "O'Hare International", "ORD", "60666"},
				{"XX", "No Code"},
			},
		}, "Airports")

		rows, err := xlsx.NewAirportWorkbook(path).LoadAirports(t.Context())

		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, coverage.AirportRow{Name: "George Bush Intercontinental", Code: "IAH", Zip: "77032"}, rows[0])
		assert.Equal(t, "ORD", rows[1].Code)
		assert.Equal(t, coverage.AirportRow{Name: "No Code"}, rows[2])
	})

	t.Run("should fail on missing header", func(t *testing.T) {
		path := writeWorkbook(t, map[string][][]any{
			"Airports": {{"AIRPORT LIST", "AIRPORT CODE"}},
		}, "Airports")

		_, err := xlsx.NewAirportWorkbook(path).LoadAirports(t.Context())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "ZIP CODE")
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		_, err := xlsx.NewAirportWorkbook(filepath.Join(t.TempDir(), "missing.xlsx")).LoadAirports(t.Context())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "open workbook")
	})

	t.Run("should require a path", func(t *testing.T) {
		_, err := xlsx.NewAirportWorkbook("").LoadAirports(t.Context())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCoverageWorkbook_LoadRegionTables(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"HOUSTON IAH 77001": {{"ZIP", "CITY ZIP"}, {77001, "77002"}, {"", 77003}},
		"CHICAGO 60601":     {{"ZIPCODES"}, {60601.0}},
	}, "HOUSTON IAH 77001", "CHICAGO 60601")

	tables, err := xlsx.NewCoverageWorkbook(path).LoadRegionTables(t.Context())
	require.NoError(t, err)
	require.Len(t, tables, 2)

	t.Run("should keep sheet order and skip headers", func(t *testing.T) {
		assert.Equal(t, "HOUSTON IAH 77001", tables[0].Key)
		assert.Equal(t, "CHICAGO 60601", tables[1].Key)
		require.Len(t, tables[0].Rows, 2)
		assert.Equal(t, []string{"77001", "77002"}, tables[0].Rows[0])
	})

	t.Run("should feed a resolvable directory", func(t *testing.T) {
		d, err := coverage.NewDirectory([]coverage.AirportRow{{Name: "a", Code: "IAH", Zip: "77032"}}, tables)
		require.NoError(t, err)

		assert.Equal(t, []string{"HOUSTON IAH", "CHICAGO"}, d.Regions())
		assert.True(t, d.ResolveZip("77003", "HOUSTON IAH").IsValid())
		assert.True(t, d.ResolveZip("60601", "CHICAGO").IsValid())
		assert.Equal(t, "Zipcode 77001 belongs to HOUSTON IAH, not CHICAGO", d.ResolveZip("77001", "CHICAGO").Reason())
	})
}

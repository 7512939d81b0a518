package yamlsource_test

import (
	"os"
	"path/filepath"
	"testing"

	"mangoshop/internal/adapters/out/refdata/yamlsource"
	"mangoshop/internal/core/domain/model/coverage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceYAML = `
airports:
  - name: George Bush Intercontinental
    code: IAH
    zip: 77032
  - name: Missing Zip
    code: XXX
regions:
  - key: HOUSTON IAH 77001
    zipcodes: [77001, 77002.0]
  - key: NEW YORK 10001
    zipcodes:
      - 10001
      - 02134
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSource(t *testing.T) {
	source := yamlsource.New(writeFile(t, referenceYAML))

	t.Run("should load airports", func(t *testing.T) {
		rows, err := source.LoadAirports(t.Context())

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, coverage.AirportRow{Name: "George Bush Intercontinental", Code: "IAH", Zip: "77032"}, rows[0])
		assert.Empty(t, rows[1].Zip)
	})

	t.Run("should load regions in document order with literal zips", func(t *testing.T) {
		tables, err := source.LoadRegionTables(t.Context())

		require.NoError(t, err)
		require.Len(t, tables, 2)
		assert.Equal(t, "HOUSTON IAH 77001", tables[0].Key)
		assert.Equal(t, [][]string{{"77001"}, {"77002.0"}}, tables[0].Rows)
		assert.Equal(t, [][]string{{"10001"}, {"02134"}}, tables[1].Rows)
	})

	t.Run("should build a directory", func(t *testing.T) {
		airports, err := source.LoadAirports(t.Context())
		require.NoError(t, err)
		tables, err := source.LoadRegionTables(t.Context())
		require.NoError(t, err)

		d, err := coverage.NewDirectory(airports, tables)
		require.NoError(t, err)

		assert.Len(t, d.Airports(), 1)
		assert.Equal(t, []string{"HOUSTON IAH"}, d.SpecialRegions())
		assert.True(t, d.ResolveZip("77002", "HOUSTON IAH").IsValid())
		assert.True(t, d.ResolveZip("02134", "NEW YORK").IsValid())
	})
}

func TestSource_Errors(t *testing.T) {
	t.Run("should reject unknown fields", func(t *testing.T) {
		_, err := yamlsource.New(writeFile(t, "airport: []\n")).LoadAirports(t.Context())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode reference data")
	})

	t.Run("should reject empty document", func(t *testing.T) {
		_, err := yamlsource.New(writeFile(t, "")).LoadRegionTables(t.Context())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is empty")
	})

	t.Run("should reject non scalar zip", func(t *testing.T) {
		_, err := yamlsource.New(writeFile(t, "regions:\n  - key: A\n    zipcodes: [[1]]\n")).LoadRegionTables(t.Context())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected a scalar value")
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		_, err := yamlsource.New(filepath.Join(t.TempDir(), "nope.yaml")).LoadAirports(t.Context())

		require.ErrorContains(t, err, "open reference data")
	})
}

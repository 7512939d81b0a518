package cmd_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"mangoshop/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceYAML = `
airports:
  - name: George Bush Intercontinental
    code: IAH
    zip: 77032
regions:
  - key: HOUSTON IAH 77001
    zipcodes: [77001, 77002]
  - key: CHICAGO 60601
    zipcodes: ["60601"]
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeReference(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.yml")
	require.NoError(t, os.WriteFile(path, []byte(referenceYAML), 0o600))
	return path
}

func TestNewCompositionRoot(t *testing.T) {
	t.Run("should load yaml reference data", func(t *testing.T) {
		path := writeReference(t)

		app, err := cmd.NewCompositionRoot(t.Context(), cmd.Config{
			AirportsFile: path,
			CoverageFile: path,
		}, nil, testLogger())

		require.NoError(t, err)
		assert.Equal(t, []string{"HOUSTON IAH", "CHICAGO"}, app.DeliveryEngine().ListRegions())
		assert.NotNil(t, app.CreateServer())
		assert.NotNil(t, app.CreateJobManager())
		assert.NotNil(t, app.Metrics().Registry())
	})

	t.Run("should fail on missing reference file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.yaml")

		_, err := cmd.NewCompositionRoot(t.Context(), cmd.Config{
			AirportsFile: missing,
			CoverageFile: missing,
		}, nil, testLogger())

		require.ErrorContains(t, err, "load airports")
	})

	t.Run("should accept configured payment gateway", func(t *testing.T) {
		path := writeReference(t)

		app, err := cmd.NewCompositionRoot(t.Context(), cmd.Config{
			AirportsFile:         path,
			CoverageFile:         path,
			PaymentGatewayURL:    "https://payments.example.com",
			PaymentGatewayAPIKey: "secret",
		}, nil, testLogger())

		require.NoError(t, err)
		assert.NotNil(t, app.CreatePlaceOrderCommandHandler())
	})
}

package servers_test

import (
	"testing"

	"mangoshop/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	require.NoError(t, swagger.Validate(t.Context()))
	assert.Equal(t, "Mangoshop API", swagger.Info.Title)

	for _, path := range []string{
		"/delivery/airports",
		"/delivery/quote",
		"/orders",
		"/orders/backlog",
		"/orders/{order_id}",
		"/orders/{order_id}/status",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}

	placeOrder := swagger.Paths.Find("/orders").Post
	require.NotNil(t, placeOrder)
	assert.Equal(t, "PlaceOrder", placeOrder.OperationID)
	assert.NotNil(t, placeOrder.RequestBody)
}

package servers

import (
	"encoding/json"
	"fmt"

	"mangoshop/internal/generated/docs"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger returns the API description converted to OpenAPI 3.
func GetSwagger() (*openapi3.T, error) {
	var v2 openapi2.T
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &v2); err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return nil, fmt.Errorf("error converting Swagger: %w", err)
	}
	return v3, nil
}

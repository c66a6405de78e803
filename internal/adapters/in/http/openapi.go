package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// LoadAPISpec reads and validates the OpenAPI document describing this
// server's contract. Validation at startup catches a drifted document
// before any client does.
func LoadAPISpec(ctx context.Context, path string) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load api document %s: %w", path, err)
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("api document %s is invalid: %w", path, err)
	}

	return doc, nil
}

// RegisterAPISpec serves the validated OpenAPI document at /openapi.json.
func RegisterAPISpec(e *echo.Echo, doc *openapi3.T) {
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	})
}

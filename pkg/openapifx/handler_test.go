package openapifx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apiarycd/repostats/pkg/openapifx"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"go.uber.org/zap/zaptest"
)

func TestNew_OverridesHostAndPath(t *testing.T) {
	spec := &swag.Spec{Host: "localhost:8080", BasePath: "/"}

	openapifx.New(openapifx.Config{PublicHost: "stats.example.com", PublicPath: "/api"}, spec, zaptest.NewLogger(t))

	assert.Equal(t, "stats.example.com", spec.Host)
	assert.Equal(t, "/api", spec.BasePath)
}

func TestHandler_RegisterDisabled(t *testing.T) {
	app := fiber.New()
	openapifx.New(openapifx.Config{}, &swag.Spec{}, zaptest.NewLogger(t)).Register(app.Group("/docs"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	stdhttptest "net/http/httptest"
	"strings"
	"testing"

	"appointment-system/internal/handler"
	"appointment-system/internal/handler/api"
	"appointment-system/internal/handler/middleware"
	"appointment-system/internal/pkg/config"
	"appointment-system/tests/common/httptest"
	commandsmock "appointment-system/tests/mock/commands"
	queriesmock "appointment-system/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := api.NewAppointmentHandler(commandsmock.NewMockAppointmentCommands(ctrl), queriesmock.NewMockAppointmentQueries(ctrl))

	cfg := config.NewTestConfig()
	cfg.Server.MetricsEnabled = true
	engine := gin.New()
	handler.NewRouter(engine, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), h)
	return engine
}

func TestRouter_Health(t *testing.T) {
	w := httptest.PerformRequest(t, newRouter(t), http.MethodGet, "/health", nil)

	var body map[string]string
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_CORSExposesClientHeaders(t *testing.T) {
	req := stdhttptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := stdhttptest.NewRecorder()

	newRouter(t).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "location")
	assert.Contains(t, exposed, strings.ToLower(middleware.RequestIDHeader))
}

func TestRouter_Metrics(t *testing.T) {
	router := newRouter(t)
	httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `appointment_http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestRouter_UnknownAppointmentRoute(t *testing.T) {
	w := httptest.PerformRequest(t, newRouter(t), http.MethodPatch, handler.APIPrefix+"/appointments/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AppointmentRoutes(t *testing.T) {
	var got []string
	for _, r := range newRouter(t).Routes() {
		if strings.HasPrefix(r.Path, handler.APIPrefix) {
			got = append(got, r.Method+" "+r.Path)
		}
	}

	assert.ElementsMatch(t, []string{
		"GET " + handler.APIPrefix + "/appointments",
		"POST " + handler.APIPrefix + "/appointments",
		"GET " + handler.APIPrefix + "/appointments/:id",
		"PUT " + handler.APIPrefix + "/appointments/:id",
		"DELETE " + handler.APIPrefix + "/appointments/:id",
	}, got)
}

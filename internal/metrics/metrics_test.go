package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionusuarios/userhub/internal/config"
	"gestionusuarios/userhub/internal/testutil"
)

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(config.MetricsConfig{Namespace: "test"})

	sqlDB, err := testutil.NewDB(t).DB()
	require.NoError(t, err)
	require.NoError(t, m.RegisterDB(sqlDB, "main"))

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/clientes/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clientes/42", nil))
	require.Equal(t, http.StatusTeapot, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/clientes/:id",status="418"} 1`)
	assert.Contains(t, body, `go_sql_open_connections{db_name="main"}`)
}

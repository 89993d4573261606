package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appRepos "github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/config"
	"github.com/yigit/campus/internal/db"
	appMiddleware "github.com/yigit/campus/internal/middleware"
	"github.com/yigit/campus/internal/pkg/testdb"
	"github.com/yigit/campus/internal/seed"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestPrepareSchemaSeedsOnce(t *testing.T) {
	gateway := db.NewGateway(testdb.NewSQLite(t))
	cfg := &config.Config{}
	cfg.Database.AutoMigrate = true
	cfg.Database.Seed = true

	PrepareSchema(context.Background(), cfg, gateway, zerolog.Nop())
	PrepareSchema(context.Background(), cfg, gateway, zerolog.Nop())

	departments, err := appRepos.NewDepartmentRepository(gateway.DB).FindAll(context.Background(), appRepos.DepartmentFilter{})
	require.NoError(t, err)

	titles := make([]string, 0, len(departments))
	for _, d := range departments {
		titles = append(titles, d.Title)
	}
	assert.ElementsMatch(t, seed.DefaultDepartmentTitles, titles)
}

func TestPrepareSchemaDisabled(t *testing.T) {
	gateway := db.NewGateway(testdb.NewSQLite(t))

	PrepareSchema(context.Background(), &config.Config{}, gateway, zerolog.Nop())

	departments, err := appRepos.NewDepartmentRepository(gateway.DB).FindAll(context.Background(), appRepos.DepartmentFilter{})
	require.NoError(t, err)
	assert.Empty(t, departments)
}

func TestNewRouterMiddleware(t *testing.T) {
	gateway := db.NewGateway(testdb.NewSQLite(t))
	router := NewRouter(BuildDependencies(gateway, zerolog.Nop()), zerolog.Nop())

	t.Run("cors and request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/departments", nil)
		req.Header.Set("Origin", "http://client.test")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, w.Header().Get(appMiddleware.RequestIDHeader))
	})

	t.Run("incoming request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(appMiddleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(appMiddleware.RequestIDHeader))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/students", nil)
		req.Header.Set("Origin", "http://client.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

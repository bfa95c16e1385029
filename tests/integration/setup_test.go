package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gabrielrealm08/finance-tracker-app/internal/handlers"
	"github.com/gabrielrealm08/finance-tracker-app/internal/logger"
	"github.com/gabrielrealm08/finance-tracker-app/internal/middleware"
	"github.com/gabrielrealm08/finance-tracker-app/internal/services"
	"github.com/gabrielrealm08/finance-tracker-app/internal/testutil"
	"github.com/gabrielrealm08/finance-tracker-app/internal/validator"
)

const testClientOrigin = "http://localhost:5173"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite, with a rate limit high enough to stay out of the way.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWithLimit(t, 10000)
}

// setupAppWithLimit creates the full stack with a specific rate limit.
func setupAppWithLimit(t *testing.T, rateLimitMax int) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	transactionService := services.NewTransactionService(db)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	limiter := middleware.NewRateLimiter(rateLimitMax, time.Minute)
	t.Cleanup(limiter.Stop)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(testClientOrigin))
	router.Use(limiter.Handler())

	api := router.Group("/api")
	api.GET("/health", handlers.HealthCheck)

	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	return &testApp{DB: db, Router: router}
}

func (app *testApp) doRequest(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

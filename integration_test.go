package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Jevohngg/happy-valley-tree-orders/config"
	"github.com/Jevohngg/happy-valley-tree-orders/models"
	"github.com/Jevohngg/happy-valley-tree-orders/services"
)

// testConfig returns a config good enough to build the full router. The JWT
// middleware never reaches Auth0 unless a token is actually presented.
func testConfig() *config.Config {
	return &config.Config{
		Auth0Domain:   "test.auth0.com",
		Auth0Audience: "https://api.happyvalleytrees.test",
	}
}

func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Species{},
		&models.FullnessVariant{},
		&models.SpeciesHeight{},
		&models.Stand{},
		&models.Wreath{},
		&models.DeliveryOption{},
		&models.Order{},
		&models.OrderTree{},
		&models.OrderStand{},
		&models.OrderWreath{},
	))
	config.SetDB(db)

	services.SetDraftStore(services.NewDraftStore(services.DefaultSessionTTL))
	services.NewMockNotificationService().SetAsMockForTesting()

	return setupRouter(testConfig()), db
}

// TestHealthEndpointIntegration tests the /api/v1/health endpoint with full routing
func TestHealthEndpointIntegration(t *testing.T) {
	router, _ := setupTestApp(t)

	req, _ := http.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Expected status 200 OK")

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Happy Valley Tree Orders API is running", response["message"])
}

// TestHealthEndpointMethod tests that only GET method is allowed
func TestHealthEndpointMethod(t *testing.T) {
	router, _ := setupTestApp(t)

	for _, method := range []string{"POST", "PUT", "DELETE"} {
		req, _ := http.NewRequest(method, "/api/v1/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s should not be allowed", method)
	}
}

// TestAPIV1Prefix tests that the endpoints require the /api/v1 prefix
func TestAPIV1Prefix(t *testing.T) {
	router, _ := setupTestApp(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code, "Endpoint should require /api/v1 prefix")

	req, _ = http.NewRequest("GET", "/api/v1/health", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "Endpoint should work with /api/v1 prefix")
}

// TestCatalogRoutesAreWired verifies the public catalog reads resolve through
// the full router
func TestCatalogRoutesAreWired(t *testing.T) {
	router, db := setupTestApp(t)

	species := models.Species{Name: "Noble Fir", Visible: true}
	require.NoError(t, db.Create(&species).Error)

	req, _ := http.NewRequest("GET", "/api/v1/catalog/species", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Noble Fir", data[0].(map[string]interface{})["name"])
}

// TestAdminRoutesRejectAnonymousRequests verifies that the JWT middleware
// actually covers the admin group
func TestAdminRoutesRejectAnonymousRequests(t *testing.T) {
	router, db := setupTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/admin/orders"},
		{"POST", "/api/v1/admin/species"},
		{"DELETE", "/api/v1/admin/stands/1"},
	}

	for _, p := range paths {
		req, _ := http.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s must require a token", p.method, p.path)
	}

	var count int64
	db.Model(&models.Species{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	shippingapp "github.com/hacom/backend/internal/application/shipping"
	"github.com/hacom/backend/internal/domain/shipping"
	"github.com/hacom/backend/internal/infrastructure/persistence"
	"github.com/hacom/backend/internal/interfaces/http/dto"
	"github.com/hacom/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testEnv wires the shipping handlers to an in-memory SQLite database
type testEnv struct {
	db     *gorm.DB
	engine *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range []string{
		`CREATE TABLE warehouses (
			id TEXT PRIMARY KEY, name TEXT NOT NULL, address TEXT,
			latitude REAL NOT NULL, longitude REAL NOT NULL,
			is_default INTEGER NOT NULL DEFAULT 0, is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL)`,
		`CREATE TABLE shipping_zones (
			id TEXT PRIMARY KEY, warehouse_id TEXT NOT NULL, name TEXT NOT NULL,
			province_ids TEXT, district_ids TEXT, is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL)`,
		`CREATE TABLE shipping_rates (
			id TEXT PRIMARY KEY, zone_id TEXT NOT NULL,
			min_distance NUMERIC NOT NULL DEFAULT 0, max_distance NUMERIC,
			base_rate NUMERIC NOT NULL DEFAULT 0, per_km_rate NUMERIC NOT NULL DEFAULT 0,
			min_order_amount NUMERIC NOT NULL DEFAULT 0, is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL, updated_at DATETIME NOT NULL)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	warehouseRepo := persistence.NewGormWarehouseRepository(db)
	zoneRepo := persistence.NewGormZoneRepository(db)
	rateRepo := persistence.NewGormRateRepository(db)
	provinces := shipping.NewProvinceDirectory(shipping.CapitalProvinceID)

	fee := NewShippingFeeHandler(shippingapp.NewFeeService(warehouseRepo, zoneRepo, rateRepo,
		provinces, shippingapp.DefaultFeeConfig(), zap.NewNop()))
	province := NewProvinceHandler(provinces)
	warehouse := NewWarehouseHandler(shippingapp.NewWarehouseService(warehouseRepo, zoneRepo))
	zone := NewZoneHandler(shippingapp.NewZoneService(zoneRepo, warehouseRepo))
	rate := NewRateHandler(shippingapp.NewRateService(rateRepo, zoneRepo, zap.NewNop()))

	engine := gin.New()
	engine.Use(middleware.RequestID())
	api := engine.Group("/api/v1/shipping")
	api.POST("/calculate", fee.Calculate)
	api.GET("/provinces", province.List)
	api.GET("/warehouses", warehouse.List)
	api.POST("/warehouses", warehouse.Create)
	api.GET("/warehouses/:id", warehouse.GetByID)
	api.PUT("/warehouses/:id", warehouse.Update)
	api.DELETE("/warehouses/:id", warehouse.Delete)
	api.POST("/warehouses/:id/default", warehouse.SetDefault)
	api.GET("/zones", zone.List)
	api.POST("/zones", zone.Create)
	api.GET("/zones/:id", zone.GetByID)
	api.PUT("/zones/:id", zone.Update)
	api.DELETE("/zones/:id", zone.Delete)
	api.GET("/zones/:id/rates", rate.ListByZone)
	api.POST("/zones/:id/rates", rate.Create)
	api.PUT("/rates/:id", rate.Update)
	api.DELETE("/rates/:id", rate.Delete)

	return &testEnv{db: db, engine: engine}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// decode unmarshals the envelope and returns its data as a generic map
func decode(t *testing.T, w *httptest.ResponseRecorder) (dto.Response, map[string]any) {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	data, _ := resp.Data.(map[string]any)
	return resp, data
}

// mustCreate posts body and returns the id of the created resource
func (e *testEnv) mustCreate(t *testing.T, path string, body any) string {
	t.Helper()
	w := e.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	_, data := decode(t, w)
	return data["id"].(string)
}

// seedHanoi creates a default warehouse 15 km north of the Hà Nội province
// coordinate with one zone covering province 1
func (e *testEnv) seedHanoi(t *testing.T) (warehouseID, zoneID string) {
	t.Helper()
	warehouseID = e.mustCreate(t, "/api/v1/shipping/warehouses", map[string]any{
		"name":       "Kho Hà Nội",
		"address":    "131 Lê Thanh Nghị",
		"latitude":   21.16339824,
		"longitude":  105.8542,
		"is_default": true,
	})
	zoneID = e.mustCreate(t, "/api/v1/shipping/zones", map[string]any{
		"warehouse_id": warehouseID,
		"name":         "Nội thành Hà Nội",
		"province_ids": []int{1},
	})
	return warehouseID, zoneID
}

package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hacom/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const warehousesPath = "/api/v1/shipping/warehouses"

func newWarehouseBody(name string, isDefault bool) map[string]any {
	return map[string]any{
		"name":       name,
		"address":    "Hà Nội",
		"latitude":   21.0285,
		"longitude":  105.8542,
		"is_default": isDefault,
	}
}

func TestWarehouseHandler_CRUD(t *testing.T) {
	env := newTestEnv(t)

	id := env.mustCreate(t, warehousesPath, newWarehouseBody("Kho Đống Đa", false))

	t.Run("get", func(t *testing.T) {
		w := env.do(t, http.MethodGet, warehousesPath+"/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		_, data := decode(t, w)
		assert.Equal(t, "Kho Đống Đa", data["name"])
		assert.Equal(t, true, data["is_active"])
	})

	t.Run("update", func(t *testing.T) {
		w := env.do(t, http.MethodPut, warehousesPath+"/"+id, map[string]any{
			"name":      "Kho Thái Hà",
			"is_active": false,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		_, data := decode(t, w)
		assert.Equal(t, "Kho Thái Hà", data["name"])
		assert.Equal(t, false, data["is_active"])
		assert.Equal(t, "Hà Nội", data["address"])
	})

	t.Run("list filters by activity", func(t *testing.T) {
		env.mustCreate(t, warehousesPath, newWarehouseBody("Kho Cầu Giấy", false))

		w := env.do(t, http.MethodGet, warehousesPath+"?is_active=true&page_size=10", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp, _ := decode(t, w)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(1), resp.Meta.Total)
		assert.Equal(t, 10, resp.Meta.PageSize)
		assert.Len(t, resp.Data, 1)
	})

	t.Run("delete", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, warehousesPath+"/"+id, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, http.MethodGet, warehousesPath+"/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWarehouseHandler_SetDefault(t *testing.T) {
	env := newTestEnv(t)
	first := env.mustCreate(t, warehousesPath, newWarehouseBody("Kho 1", true))
	second := env.mustCreate(t, warehousesPath, newWarehouseBody("Kho 2", false))

	w := env.do(t, http.MethodPost, warehousesPath+"/"+second+"/default", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	_, data := decode(t, w)
	assert.Equal(t, true, data["is_default"])

	w = env.do(t, http.MethodGet, warehousesPath+"/"+first, nil)
	_, data = decode(t, w)
	assert.Equal(t, false, data["is_default"])

	t.Run("inactive warehouse cannot become default", func(t *testing.T) {
		env.do(t, http.MethodPut, warehousesPath+"/"+first, map[string]any{"is_active": false})

		w := env.do(t, http.MethodPost, warehousesPath+"/"+first+"/default", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestWarehouseHandler_Errors(t *testing.T) {
	env := newTestEnv(t)

	t.Run("malformed id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, warehousesPath+"/not-a-uuid", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp, _ := decode(t, w)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, warehousesPath+"/"+uuid.NewString(), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		resp, _ := decode(t, w)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("coordinates are required and bounded", func(t *testing.T) {
		w := env.do(t, http.MethodPost, warehousesPath, map[string]any{"name": "Kho", "latitude": 91, "longitude": 105})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp, _ := decode(t, w)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "latitude", resp.Error.Details[0].Field)

		w = env.do(t, http.MethodPost, warehousesPath, map[string]any{"name": "Kho"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp, _ = decode(t, w)
		assert.Len(t, resp.Error.Details, 2)
	})

	t.Run("warehouse with zones cannot be deleted", func(t *testing.T) {
		warehouseID, _ := env.seedHanoi(t)

		w := env.do(t, http.MethodDelete, warehousesPath+"/"+warehouseID, nil)
		require.Equal(t, http.StatusConflict, w.Code)
		resp, _ := decode(t, w)
		assert.Equal(t, "WAREHOUSE_HAS_ZONES", resp.Error.Code)
	})

	t.Run("bad is_active filter", func(t *testing.T) {
		w := env.do(t, http.MethodGet, warehousesPath+"?is_active=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

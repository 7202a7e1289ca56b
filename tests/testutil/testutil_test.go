package testutil

import (
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMockDB(t *testing.T) {
	m := NewMockDB(t)
	m.Mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	var n int
	require.NoError(t, m.DB.Raw("SELECT 1").Scan(&n).Error)
	assert.Equal(t, 1, n)
}

func TestRequireEventually(t *testing.T) {
	var ready atomic.Bool
	go func() {
		time.Sleep(20 * time.Millisecond)
		ready.Store(true)
	}()
	RequireEventually(t, ready.Load, time.Second, 5*time.Millisecond)
}

func TestHTTPHelpers(t *testing.T) {
	engine := gin.New()
	engine.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		_ = c.ShouldBindJSON(&body)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": body})
	})
	engine.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "nope",
			"error":   gin.H{"code": "NOT_FOUND", "message": "nope"},
		})
	})

	t.Run("data decodes into the requested type", func(t *testing.T) {
		w := Do(t, engine, http.MethodPost, "/echo", map[string]int{"destination_province_id": 1})
		out := DataAs[map[string]int](t, w)
		assert.Equal(t, 1, out["destination_province_id"])
	})

	t.Run("error envelope", func(t *testing.T) {
		w := Do(t, engine, http.MethodGet, "/missing", nil)
		AssertErrorResponse(t, w, http.StatusNotFound, "NOT_FOUND")
		assert.Equal(t, "nope", DecodeEnvelope(t, w).Message)
	})
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	var order []string

	group := NewDomainGroup("test", "/test").
		Use(func(c *gin.Context) { order = append(order, "group"); c.Next() }).
		GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	NewRouter(engine).
		Use(func(c *gin.Context) { order = append(order, "api"); c.Next() }).
		Register(group).
		Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.Equal(t, []string{"api", "group"}, order)
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("shipping", "/shipping")
		assert.Equal(t, "shipping", g.Name())
		assert.Equal(t, "/shipping", g.Prefix())
	})

	t.Run("registers every method", func(t *testing.T) {
		engine := gin.New()
		ok := func(c *gin.Context) { c.String(http.StatusOK, c.Request.Method) }
		NewDomainGroup("test", "/test").
			GET("/r", ok).
			POST("/r", ok).
			PUT("/r", ok).
			DELETE("/r", ok).
			Handle(http.MethodPatch, "/r", ok).
			RegisterRoutes(engine.Group("/api/v1"))

		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(method, "/api/v1/test/r", nil))
			assert.Equal(t, http.StatusOK, w.Code, method)
			assert.Equal(t, method, w.Body.String())
		}
	})

	t.Run("nests subgroups", func(t *testing.T) {
		engine := gin.New()
		parent := NewDomainGroup("shipping", "/shipping")
		parent.Group("zones", "/zones").
			GET("/:id/rates", func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) })
		parent.RegisterRoutes(engine.Group("/api/v1"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/shipping/zones/z1/rates", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "z1", w.Body.String())
	})
}

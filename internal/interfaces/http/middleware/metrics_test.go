package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestHTTPMetrics(t *testing.T) {
	t.Run("nil meter passes through", func(t *testing.T) {
		h, err := HTTPMetrics(nil)
		require.NoError(t, err)

		r := gin.New()
		r.Use(h)
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("records requests by route and status", func(t *testing.T) {
		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

		h, err := HTTPMetrics(mp.Meter("test"))
		require.NoError(t, err)

		r := gin.New()
		r.Use(h)
		r.GET("/api/v1/provinces", func(c *gin.Context) { c.Status(http.StatusOK) })

		for _, path := range []string{"/api/v1/provinces", "/api/v1/provinces", "/missing"} {
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		}

		var rm metricdata.ResourceMetrics
		require.NoError(t, reader.Collect(t.Context(), &rm))

		byRoute := make(map[string]int64)
		var histCount uint64
		var active int64 = -1
		for _, sm := range rm.ScopeMetrics {
			for _, m := range sm.Metrics {
				switch data := m.Data.(type) {
				case metricdata.Sum[int64]:
					for _, dp := range data.DataPoints {
						if m.Name == "http.server.active_requests" {
							active = dp.Value
							continue
						}
						route, _ := dp.Attributes.Value("http.route")
						byRoute[route.AsString()] += dp.Value
					}
				case metricdata.Histogram[float64]:
					for _, dp := range data.DataPoints {
						histCount += dp.Count
					}
				}
			}
		}

		assert.Equal(t, int64(2), byRoute["/api/v1/provinces"])
		assert.Equal(t, int64(1), byRoute["unmatched"])
		assert.Equal(t, uint64(3), histCount)
		assert.Equal(t, int64(0), active)
	})
}

package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/hacom/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDefaultDBTracingConfig(t *testing.T) {
	cfg := telemetry.DefaultDBTracingConfig()
	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.LogFullSQL)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThresh)
	assert.Equal(t, "postgresql", cfg.DBSystem)
}

func TestDBTracingPlugin_Disabled(t *testing.T) {
	sr := setupTestTracer(t)
	db := setupSampleDB(t)

	plugin := telemetry.NewDBTracingPlugin(telemetry.DefaultDBTracingConfig(), zaptest.NewLogger(t))
	require.NoError(t, plugin.RegisterOtelGorm(db))

	var got []sampleRow
	require.NoError(t, db.WithContext(context.Background()).Find(&got).Error)
	assert.Empty(t, sr.Ended())
}

func TestDBTracingPlugin_CreatesQuerySpans(t *testing.T) {
	sr := setupTestTracer(t)
	db := setupSampleDB(t)

	plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: time.Nanosecond,
		DBSystem:        "sqlite",
	}, zaptest.NewLogger(t))
	require.NoError(t, plugin.RegisterOtelGorm(db))

	ctx, parent := telemetry.StartSpan(context.Background(), "shipping_zone.list")
	var got []sampleRow
	require.NoError(t, db.WithContext(ctx).Where("name = ?", "secret").Find(&got).Error)
	parent.End()

	ended := sr.Ended()
	require.GreaterOrEqual(t, len(ended), 2)

	var found bool
	for _, s := range ended {
		if s.SpanContext().SpanID() == parent.SpanContext().SpanID() {
			attrs := attrMap(s.Attributes())
			assert.NotContains(t, attrs, "db.sql.table")
			assert.NotContains(t, attrs, "db.rows_affected")
			continue
		}
		if s.Parent().SpanID() != parent.SpanContext().SpanID() {
			continue
		}
		found = true
		assert.Equal(t, "gorm.Query", s.Name())
		attrs := attrMap(s.Attributes())
		assert.Equal(t, "sample_rows", attrs["db.sql.table"].AsString())
		assert.True(t, attrs["db.slow_query"].AsBool())
		assert.Contains(t, attrs, "db.query_duration_ms")
		assert.NotContains(t, attrs["db.statement"].AsString(), "secret")
	}
	assert.True(t, found, "expected a query span under the service span")
}

func TestDBTracingPlugin_WithDBMetrics(t *testing.T) {
	sr := setupTestTracer(t)
	mp, reader := newTestMeter(t)
	db := setupSampleDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: time.Nanosecond,
		DBSystem:        "sqlite",
	}, zaptest.NewLogger(t))
	require.NoError(t, plugin.RegisterOtelGorm(db))

	m, err := telemetry.NewDBMetrics(mp.Meter("db.client"), sqlDB, time.Nanosecond, nil)
	require.NoError(t, err)
	require.NoError(t, db.Use(m))
	t.Cleanup(func() { _ = m.Stop() })

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&sampleRow{Name: "a"}).Error)
	var got []sampleRow
	require.NoError(t, db.WithContext(ctx).Find(&got).Error)

	ops := sumByAttr(t, collect(t, reader)["db.query.total"], telemetry.AttrDBOperation)
	assert.Equal(t, int64(1), ops["INSERT"])
	assert.Equal(t, int64(1), ops["SELECT"])

	slowSpans := 0
	for _, s := range sr.Ended() {
		if attrMap(s.Attributes())["db.slow_query"].AsBool() {
			slowSpans++
		}
	}
	assert.Equal(t, 2, slowSpans)
}

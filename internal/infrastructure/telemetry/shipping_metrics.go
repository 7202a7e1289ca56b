package telemetry

import (
	"context"
	"errors"

	"github.com/hacom/backend/internal/domain/shipping"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a metrics set is built without a meter
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// ShippingMetrics counts shipping quotes by outcome and records the quoted
// fee distribution. It satisfies the fee service's quote recorder.
type ShippingMetrics struct {
	quotesTotal *Counter
	freeTotal   *Counter
	feeAmount   *Histogram
}

// NewShippingMetrics registers the shipping instruments on meter
func NewShippingMetrics(meter metric.Meter) (*ShippingMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	quotesTotal, err := NewCounter(meter,
		"shipping.quotes.total",
		"Shipping quotes served, by outcome",
		"{quote}",
	)
	if err != nil {
		return nil, err
	}
	freeTotal, err := NewCounter(meter,
		"shipping.quotes.free_total",
		"Shipping quotes that qualified for free shipping",
		"{quote}",
	)
	if err != nil {
		return nil, err
	}
	feeAmount, err := NewHistogram(meter, HistogramOpts{
		Name:        "shipping.fee",
		Description: "Quoted shipping fee",
		Unit:        "{VND}",
		Boundaries:  ShippingFeeBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &ShippingMetrics{
		quotesTotal: quotesTotal,
		freeTotal:   freeTotal,
		feeAmount:   feeAmount,
	}, nil
}

// RecordQuote records one quote. Failed quotes only count toward the total.
func (m *ShippingMetrics) RecordQuote(ctx context.Context, outcome shipping.QuoteOutcome, fee int64, free bool) {
	m.quotesTotal.Inc(ctx, AttrQuoteOutcome.String(string(outcome)))
	if outcome == shipping.QuoteOutcomeError {
		return
	}
	if free {
		m.freeTotal.Inc(ctx, AttrQuoteOutcome.String(string(outcome)))
	}
	m.feeAmount.Record(ctx, float64(fee),
		AttrQuoteOutcome.String(string(outcome)),
		AttrFreeShipping.Bool(free),
	)
}

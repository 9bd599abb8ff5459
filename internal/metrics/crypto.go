// Package metrics records field-level crypto outcomes with OpenTelemetry.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const namespace = "contact_crypto"

// Field outcome statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// CryptoMetrics records the outcome of every designated field processed by
// the record transform.
type CryptoMetrics interface {
	// RecordField counts one field.
	// Operation examples: "encrypt", "decrypt"
	// Kind examples: "contact", "searchResult"
	// Status examples: "success", "error", "skipped"
	RecordField(ctx context.Context, operation, kind, status string)

	// RecordTransform records how long one record transform took.
	RecordTransform(ctx context.Context, operation, kind string, duration time.Duration)
}

type cryptoMetrics struct {
	fieldCounter   metric.Int64Counter
	transformHisto metric.Float64Histogram
}

// NewCryptoMetrics creates the instruments on meterProvider.
func NewCryptoMetrics(meterProvider metric.MeterProvider) (CryptoMetrics, error) {
	meter := meterProvider.Meter(namespace)

	fieldCounter, err := meter.Int64Counter(
		namespace+"_field_operations_total",
		metric.WithDescription("Total number of designated fields processed"),
		metric.WithUnit("{field}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create field counter: %w", err)
	}

	transformHisto, err := meter.Float64Histogram(
		namespace+"_transform_duration_seconds",
		metric.WithDescription("Duration of record transforms in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transform histogram: %w", err)
	}

	return &cryptoMetrics{
		fieldCounter:   fieldCounter,
		transformHisto: transformHisto,
	}, nil
}

func (m *cryptoMetrics) RecordField(ctx context.Context, operation, kind, status string) {
	m.fieldCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("kind", kind),
			attribute.String("status", status),
		),
	)
}

func (m *cryptoMetrics) RecordTransform(ctx context.Context, operation, kind string, duration time.Duration) {
	m.transformHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("kind", kind),
		),
	)
}

// NoopCryptoMetrics returns metrics backed by the OpenTelemetry no-op meter.
func NoopCryptoMetrics() CryptoMetrics {
	m, err := NewCryptoMetrics(noop.NewMeterProvider())
	if err != nil {
		// The no-op meter never fails to create instruments.
		panic(err)
	}
	return m
}

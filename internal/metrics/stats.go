package metrics

import (
	"context"
	"fmt"
	"sort"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Stats is an in-process meter provider backed by a manual reader. The CLI
// uses it to print per-field crypto counters after a command.
type Stats struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
}

// FieldStat is one counter series of the field operations counter.
type FieldStat struct {
	Operation string `json:"operation"`
	Kind      string `json:"kind"`
	Status    string `json:"status"`
	Count     int64  `json:"count"`
}

// NewStats creates the provider.
func NewStats() *Stats {
	reader := sdkmetric.NewManualReader()
	return &Stats{
		reader:   reader,
		provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	}
}

// MeterProvider returns the provider to pass to [NewCryptoMetrics].
func (s *Stats) MeterProvider() *sdkmetric.MeterProvider {
	return s.provider
}

// FieldStats collects the current values of the field operations counter,
// sorted by operation, kind and status.
func (s *Stats) FieldStats(ctx context.Context) ([]FieldStat, error) {
	var rm metricdata.ResourceMetrics
	if err := s.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	var out []FieldStat
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != namespace+"_field_operations_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value("operation")
				kind, _ := dp.Attributes.Value("kind")
				status, _ := dp.Attributes.Value("status")
				out = append(out, FieldStat{
					Operation: op.AsString(),
					Kind:      kind.AsString(),
					Status:    status.AsString(),
					Count:     dp.Value,
				})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Operation != b.Operation {
			return a.Operation < b.Operation
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Status < b.Status
	})
	return out, nil
}

// Shutdown flushes and stops the provider.
func (s *Stats) Shutdown(ctx context.Context) error {
	return s.provider.Shutdown(ctx)
}

package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopCryptoMetrics(t *testing.T) {
	m := NoopCryptoMetrics()
	require.NotNil(t, m)

	// Should not panic
	m.RecordField(context.Background(), "encrypt", "contact", StatusSuccess)
	m.RecordTransform(context.Background(), "encrypt", "contact", time.Millisecond)
}

func TestCryptoMetrics_FieldStats(t *testing.T) {
	ctx := context.Background()
	stats := NewStats()
	t.Cleanup(func() { _ = stats.Shutdown(ctx) })

	m, err := NewCryptoMetrics(stats.MeterProvider())
	require.NoError(t, err)

	m.RecordField(ctx, "encrypt", "contact", StatusSuccess)
	m.RecordField(ctx, "encrypt", "contact", StatusSuccess)
	m.RecordField(ctx, "decrypt", "contact", StatusError)
	m.RecordField(ctx, "decrypt", "searchResult", StatusSuccess)
	m.RecordTransform(ctx, "encrypt", "contact", 2*time.Millisecond)

	got, err := stats.FieldStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, []FieldStat{
		{Operation: "decrypt", Kind: "contact", Status: StatusError, Count: 1},
		{Operation: "decrypt", Kind: "searchResult", Status: StatusSuccess, Count: 1},
		{Operation: "encrypt", Kind: "contact", Status: StatusSuccess, Count: 2},
	}, got)
}

func TestStats_Empty(t *testing.T) {
	stats := NewStats()

	got, err := stats.FieldStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

package telemetry

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out[m.Name] += dp.Value
			}
		}
	}
	return out
}

func TestArticleMetrics_Counts(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background()) //nolint:errcheck

	m, err := NewArticleMetricsWithMeter(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewArticleMetricsWithMeter: %v", err)
	}

	ctx := context.Background()
	m.Created(ctx, "001")
	m.Created(ctx, "002")
	m.OrderAppended(ctx, "001")
	m.Imported(ctx, 5)
	m.Imported(ctx, 0)
	m.Described(ctx, "ok")

	got := collectSums(t, reader)
	want := map[string]int64{
		"articles_created_total":        2,
		"article_orders_appended_total": 1,
		"articles_imported_total":       5,
		"article_descriptions_total":    1,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %d, want %d", name, got[name], v)
		}
	}
}

func TestArticleMetrics_NilIsNoop(t *testing.T) {
	var m *ArticleMetrics
	ctx := context.Background()
	m.Created(ctx, "001")
	m.OrderAppended(ctx, "001")
	m.Edited(ctx)
	m.Deleted(ctx)
	m.Imported(ctx, 3)
	m.Described(ctx, "ok")
}

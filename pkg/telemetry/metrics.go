package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const articleMeterName = "github.com/Tecnic226/Codis-Nous-TM/articles"

// ArticleMetrics holds the article counters exported on /metrics.
// A nil *ArticleMetrics is valid and records nothing.
type ArticleMetrics struct {
	created        metric.Int64Counter
	ordersAppended metric.Int64Counter
	edited         metric.Int64Counter
	deleted        metric.Int64Counter
	imported       metric.Int64Counter
	descriptions   metric.Int64Counter
}

// NewArticleMetrics registers the counters on the global meter provider.
// Call after Setup so they land in the Prometheus reader.
func NewArticleMetrics() (*ArticleMetrics, error) {
	return NewArticleMetricsWithMeter(otel.Meter(articleMeterName))
}

// NewArticleMetricsWithMeter registers the counters on m.
func NewArticleMetricsWithMeter(m metric.Meter) (*ArticleMetrics, error) {
	var (
		am  ArticleMetrics
		err error
	)
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&am.created, "articles_created_total", "Articles created from a submitted candidate."},
		{&am.ordersAppended, "article_orders_appended_total", "Manufacturing orders appended to an existing article."},
		{&am.edited, "articles_edited_total", "Explicit article edits."},
		{&am.deleted, "articles_deleted_total", "Articles removed."},
		{&am.imported, "articles_imported_total", "Articles added by import."},
		{&am.descriptions, "article_descriptions_total", "Description requests by result."},
	}
	for _, c := range counters {
		*c.dst, err = m.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("create counter %s: %w", c.name, err)
		}
	}
	return &am, nil
}

func (m *ArticleMetrics) Created(ctx context.Context, clientID string) {
	if m == nil {
		return
	}
	m.created.Add(ctx, 1, metric.WithAttributes(attribute.String("client_id", clientID)))
}

func (m *ArticleMetrics) OrderAppended(ctx context.Context, clientID string) {
	if m == nil {
		return
	}
	m.ordersAppended.Add(ctx, 1, metric.WithAttributes(attribute.String("client_id", clientID)))
}

func (m *ArticleMetrics) Edited(ctx context.Context) {
	if m == nil {
		return
	}
	m.edited.Add(ctx, 1)
}

func (m *ArticleMetrics) Deleted(ctx context.Context) {
	if m == nil {
		return
	}
	m.deleted.Add(ctx, 1)
}

func (m *ArticleMetrics) Imported(ctx context.Context, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.imported.Add(ctx, int64(n))
}

// Described records a description request; result is "ok" or the fallback kind.
func (m *ArticleMetrics) Described(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.descriptions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

package workflows

import (
	"bytes"
	"testing"

	"go.opentelemetry.io/otel"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
)

func TestWorkerOptions(t *testing.T) {
	opts := WorkerOptions(nil)
	if opts.MaxConcurrentActivityExecutionSize != maxConcurrentActivities {
		t.Fatalf("MaxConcurrentActivityExecutionSize: got %d", opts.MaxConcurrentActivityExecutionSize)
	}
	if len(opts.Interceptors) != 0 {
		t.Fatalf("expected no interceptors, got %d", len(opts.Interceptors))
	}

	tracing, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{Tracer: otel.Tracer("test")})
	if err != nil {
		t.Fatalf("NewTracingInterceptor: %v", err)
	}
	if opts := WorkerOptions(tracing); len(opts.Interceptors) != 1 {
		t.Fatalf("expected tracing interceptor, got %d", len(opts.Interceptors))
	}
}

func TestTemporalLogger_ForwardsKeyvals(t *testing.T) {
	var buf bytes.Buffer
	l := newTemporalLogger(logger.NewWithWriter(&buf, "debug"))
	l.Warn("activity heartbeat timeout", "workflow_id", "describe-article-1")

	if !bytes.Contains(buf.Bytes(), []byte(`"workflow_id":"describe-article-1"`)) {
		t.Fatalf("expected keyvals in log line, got %s", buf.String())
	}
}

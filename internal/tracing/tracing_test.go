package tracing

import (
	"context"
	"strings"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestParseSampler(t *testing.T) {
	cases := []struct {
		name, arg string
		want      string
	}{
		{"always_on", "", "AlwaysOnSampler"},
		{"always_off", "", "AlwaysOffSampler"},
		{"", "", "ParentBased{root:AlwaysOnSampler"},
		{"traceidratio", "0.25", "TraceIDRatioBased{0.25}"},
		{"traceidratio", "-1", "TraceIDRatioBased{0}"},
		{"traceidratio", "bogus", "ParentBased{root:AlwaysOnSampler"},
		{"traceidratio", "7", "ParentBased{root:AlwaysOnSampler"},
		{"unknown", "", "ParentBased{root:AlwaysOnSampler"},
	}
	for _, tc := range cases {
		got := parseSampler(tc.name, tc.arg).Description()
		if !strings.Contains(got, tc.want) {
			t.Fatalf("parseSampler(%q, %q) = %s, want it to contain %s", tc.name, tc.arg, got, tc.want)
		}
	}
}

func TestInitTracer_NoopExporter(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), Config{TracesExport: "none", Environment: "test"})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}()
	_, span := GetTracer().Start(context.Background(), "probe")
	if !span.SpanContext().IsValid() {
		t.Fatalf("expected a recording span from the installed provider")
	}
	span.End()
}

func TestInitTracer_UnknownExporterLeavesGlobalsAlone(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	provider := otel.GetTracerProvider()

	if _, err := InitTracer(context.Background(), Config{TracesExport: "zipkin"}); err == nil {
		t.Fatal("expected error for unsupported exporter")
	}
	if _, ok := otel.GetTextMapPropagator().(propagation.TraceContext); !ok {
		t.Fatalf("propagator replaced by failed init: %T", otel.GetTextMapPropagator())
	}
	if otel.GetTracerProvider() != provider {
		t.Fatal("tracer provider replaced by failed init")
	}
}

func TestGetTracer_Concurrent(t *testing.T) {
	mu.Lock()
	tracer = nil
	mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, span := GetTracer().Start(context.Background(), "concurrent")
			span.End()
		}()
	}
	wg.Wait()
	if GetTracer() == nil {
		t.Fatal("expected a tracer")
	}
}

package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/eduviz/internal/config"
	"github.com/yungbote/eduviz/internal/platform/logger"
)

func TestMetricsWritePrometheus(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("POST", "/generate", "200", 3*time.Millisecond)
	m.ObserveAPI("", "", "", time.Millisecond)
	m.IncGeneration("physics", "ok")
	m.IncGeneration("physics", "ok")
	m.IncMeshBuild("cube", "json")
	m.ApiInflightInc()
	m.ApiInflightDec()

	if got := m.generations.Value("physics", "ok"); got != 2 {
		t.Fatalf("generations=%v", got)
	}
	if got := m.apiInflight.Value(); got != 0 {
		t.Fatalf("inflight=%v", got)
	}

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`eduviz_api_requests_total{method="POST",route="/generate",status="200"} 1`,
		`eduviz_api_requests_total{method="UNKNOWN",route="unknown",status="0"} 1`,
		`eduviz_api_request_duration_seconds_bucket{method="POST",route="/generate",status="200",le="0.005"} 1`,
		`eduviz_api_request_duration_seconds_bucket{method="POST",route="/generate",status="200",le="+Inf"} 1`,
		`eduviz_generations_total{subject="physics",status="ok"} 2`,
		`eduviz_mesh_builds_total{primitive="cube",format="json"} 1`,
		"# TYPE eduviz_api_inflight_requests gauge",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.IncGeneration("math", "ok")
	m.IncMeshBuild("sphere", "png")
	if err := m.WritePrometheus(&bytes.Buffer{}); err != nil {
		t.Fatalf("nil WritePrometheus: %v", err)
	}
}

func TestLabelEscaping(t *testing.T) {
	got := labelString([]string{"a"}, []string{"x\"y\\z\n"})
	if got != `{a="x\"y\\z\n"}` {
		t.Fatalf("labelString=%s", got)
	}
	if withLe("", "1") != `{le="1"}` {
		t.Fatalf("withLe empty")
	}
}

func TestInitOTelDisabled(t *testing.T) {
	shutdown := InitOTel(context.Background(), logger.Nop(), "test", config.OTelConfig{})
	if shutdown == nil {
		t.Fatalf("nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

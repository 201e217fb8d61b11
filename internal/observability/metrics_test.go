package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics("leads_test")
	m.RecordRequest("/api/leads", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/leads", "GET", 200, 20*time.Millisecond)
	m.RecordError("/api/leads/:id", "PATCH", "NOT_FOUND")
	m.RecordLeadUpdate()
	m.RecordAssessment()
	m.RecordAssessment()

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/api/leads", "GET", "200")); got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("/api/leads/:id", "PATCH", "NOT_FOUND")); got != 1 {
		t.Fatalf("expected 1 error, got %v", got)
	}
	if got := testutil.ToFloat64(m.leadUpdates); got != 1 {
		t.Fatalf("expected 1 lead update, got %v", got)
	}
	if got := testutil.ToFloat64(m.assessments); got != 2 {
		t.Fatalf("expected 2 assessments, got %v", got)
	}
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	m.RecordLeadUpdate()
	m.RecordAssessment()
}

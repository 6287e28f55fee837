package worker

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordRun(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordRun(nil, 3, 50*time.Millisecond)
	m.RecordRun(nil, 2, 30*time.Millisecond)
	m.RecordRun(errors.New("db down"), 0, 10*time.Millisecond)

	if got := testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("success")); got != 2 {
		t.Errorf("success runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.SweepRunsTotal.WithLabelValues("failure")); got != 1 {
		t.Errorf("failure runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.SweptSubscriptionsTotal); got != 5 {
		t.Errorf("swept total = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.LastSuccessTimestamp); got == 0 {
		t.Error("last success timestamp not set")
	}
}

func TestMetrics_FailureLeavesSuccessMarkers(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordRun(errors.New("db down"), 9, time.Second)

	if got := testutil.ToFloat64(m.SweptSubscriptionsTotal); got != 0 {
		t.Errorf("failed run must not count swept rows, got %v", got)
	}
	if got := testutil.ToFloat64(m.LastSuccessTimestamp); got != 0 {
		t.Errorf("failed run must not bump last success, got %v", got)
	}
}

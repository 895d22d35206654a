package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type stubProvider struct {
	stats Stats
}

func (s *stubProvider) GetStats() Stats {
	return s.stats
}

func TestCollectorCollect(t *testing.T) {
	provider := &stubProvider{stats: Stats{
		JobsCompleted: 7,
		JobsFailed:    2,
		TotalRows:     150,
	}}

	c := NewCollector(provider, time.Minute)
	c.collect()

	if got := testutil.ToFloat64(JobsRecorded.WithLabelValues("completed")); got != 7 {
		t.Errorf("completed jobs gauge = %v, want 7", got)
	}
	if got := testutil.ToFloat64(JobsRecorded.WithLabelValues("failed")); got != 2 {
		t.Errorf("failed jobs gauge = %v, want 2", got)
	}
	if got := testutil.ToFloat64(RowsRecorded); got != 150 {
		t.Errorf("rows gauge = %v, want 150", got)
	}
}

func TestCollectorNilProvider(t *testing.T) {
	c := NewCollector(nil, time.Minute)
	// Must not panic.
	c.collect()
}

func TestCollectorStartStop(t *testing.T) {
	provider := &stubProvider{}
	c := NewCollector(provider, 10*time.Millisecond)

	c.Start()
	time.Sleep(25 * time.Millisecond)
	c.Stop()
}

func TestInitializeMetrics(t *testing.T) {
	// Must be callable repeatedly without panicking.
	InitializeMetrics()
	InitializeMetrics()

	if got := testutil.ToFloat64(GenerationsTotal.WithLabelValues("qr", "png")); got != 0 {
		t.Errorf("pre-populated counter should be zero, got %v", got)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.2.3", "abc123", "go1.25")

	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.2.3", "abc123", "go1.25")); got != 1 {
		t.Errorf("app info gauge = %v, want 1", got)
	}
}

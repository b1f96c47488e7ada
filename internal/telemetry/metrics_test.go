package telemetry

import (
	"strings"
	"testing"
	"time"
)

func TestCounters(t *testing.T) {
	m := NewMetricsCollector()

	m.IncrementCounter(MetricCallsIncrement, 1)
	m.IncrementCounter(MetricCallsIncrement, 2)

	if got := m.GetCounter(MetricCallsIncrement); got != 3 {
		t.Errorf("GetCounter = %d, want 3", got)
	}
	if got := m.GetCounter(MetricCallsDecrement); got != 0 {
		t.Errorf("GetCounter for untouched metric = %d, want 0", got)
	}
}

func TestGauges(t *testing.T) {
	m := NewMetricsCollector()

	m.SetGauge(MetricCounterValue, 42)
	if got := m.GetGauge(MetricCounterValue); got != 42 {
		t.Errorf("GetGauge = %v, want 42", got)
	}
}

func TestTimers(t *testing.T) {
	m := NewMetricsCollector()

	m.RecordTimer(MetricDispatchTime, 10*time.Millisecond)
	m.RecordTimer(MetricDispatchTime, 30*time.Millisecond)

	if got := m.GetTimerAverage(MetricDispatchTime); got != 20*time.Millisecond {
		t.Errorf("GetTimerAverage = %v, want 20ms", got)
	}
	if got := m.GetTimerP95(MetricDispatchTime); got != 30*time.Millisecond {
		t.Errorf("GetTimerP95 = %v, want 30ms", got)
	}
}

func TestTimerBounded(t *testing.T) {
	m := NewMetricsCollector()

	for i := 0; i < 250; i++ {
		m.RecordTimer(MetricDispatchTime, time.Millisecond)
	}

	m.mu.RLock()
	stored := len(m.timers[MetricDispatchTime])
	m.mu.RUnlock()

	if stored > 100 {
		t.Errorf("Timer retained %d samples, want at most 100", stored)
	}
}

func TestReportAndReset(t *testing.T) {
	m := NewMetricsCollector()

	m.IncrementCounter(MetricCallsSuccess, 5)
	m.RecordTimestamp(MetricServerStart)

	report := m.GetReport()
	if !strings.Contains(report, MetricCallsSuccess) {
		t.Errorf("Report missing counter %s: %s", MetricCallsSuccess, report)
	}

	m.Reset()
	if got := m.GetCounter(MetricCallsSuccess); got != 0 {
		t.Errorf("GetCounter after Reset = %d, want 0", got)
	}
}

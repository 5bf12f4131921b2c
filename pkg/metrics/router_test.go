package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRouterMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewRouterMetrics(reg)
	op := "GetProducts"
	metrics.IncRemoteFailure(op)
	metrics.IncRemoteSkip(op)
	metrics.IncFallback(op)
	metrics.IncLocalFailure(op)
	metrics.ObserveDuration(op, "local", 250*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	for _, name := range []string{
		"store_remote_failures_total",
		"store_remote_skips_total",
		"store_fallbacks_total",
		"store_local_failures_total",
	} {
		got, err := fetchCounterValue(mfs, name, "operation", op)
		if err != nil {
			t.Fatalf("fetch %s: %v", name, err)
		}
		if got != 1 {
			t.Fatalf("expected %s=1, got %f", name, got)
		}
	}

	if got, err := fetchHistogramSum(mfs, "store_operation_duration_seconds", "operation", op); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestRouterMetricsNilReceiverIsSafe(t *testing.T) {
	var metrics *RouterMetrics
	metrics.IncRemoteFailure("x")
	metrics.IncRemoteSkip("x")
	metrics.IncFallback("x")
	metrics.IncLocalFailure("x")
	metrics.ObserveDuration("x", "remote", time.Second)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}

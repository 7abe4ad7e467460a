package logging

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsEmittedEntries(t *testing.T) {
	core, logs := newObservedCore(t)
	cfg := Config{Service: "metered-svc", Level: "info", Metrics: true}
	logger, err := NewWithCore(cfg, core)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	before := testutil.ToFloat64(entriesTotal.WithLabelValues("metered-svc", "info"))

	logger.Info("one")
	logger.Info("two")
	logger.Debug("filtered")

	after := testutil.ToFloat64(entriesTotal.WithLabelValues("metered-svc", "info"))
	if after-before != 2 {
		t.Errorf("Expected 2 counted info entries, got %v", after-before)
	}
	if logs.Len() != 2 {
		t.Errorf("Expected counted entries to still reach the sink, got %d", logs.Len())
	}
}

func TestMetrics_FilteredEntriesNotCounted(t *testing.T) {
	core, _ := newObservedCore(t)
	logger, err := NewWithCore(Config{Service: "metered-svc", Level: "warn", Metrics: true}, core)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	before := testutil.ToFloat64(entriesTotal.WithLabelValues("metered-svc", "info"))
	logger.Info("filtered")
	after := testutil.ToFloat64(entriesTotal.WithLabelValues("metered-svc", "info"))

	if after != before {
		t.Errorf("Expected filtered entry not to be counted, got delta %v", after-before)
	}
}

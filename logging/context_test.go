package logging

import (
	"context"
	"testing"
)

func TestWithLogger_RoundTrip(t *testing.T) {
	logger, _ := newObserved(t, Config{Service: "svc", Level: "info"})
	ctx := WithLogger(context.Background(), logger)

	if FromContext(ctx) != logger {
		t.Error("Expected the stored logger back from the context")
	}
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	if logger == nil {
		t.Fatal("Expected a no-op logger when none exists in context")
	}

	// Should not panic.
	logger.Info("test message")
}

func TestAddContext_DerivesChild(t *testing.T) {
	logger, logs := newObserved(t, Config{Service: "svc", Level: "info"})
	ctx := WithLogger(context.Background(), logger)

	ctx = AddContext(ctx, Context{Labels: map[string]interface{}{"tenant": "acme"}})
	FromContext(ctx).Info("scoped")

	labels := subRecord(t, logs.All()[0], "labels")
	if labels["tenant"] != "acme" {
		t.Errorf("Expected derived logger to carry the overlay, got %v", labels)
	}

	// The original handle is untouched.
	logger.Info("unscoped")
	if _, ok := logs.All()[1].ContextMap()["labels"]; ok {
		t.Error("Expected the original logger unchanged")
	}
}

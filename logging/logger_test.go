package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/foliocms/shared-go/apperr"
)

// newObservedCore returns an observer core capturing everything down to
// trace, for wiring into NewWithCore.
func newObservedCore(t *testing.T) (zapcore.Core, *observer.ObservedLogs) {
	t.Helper()
	return observer.New(TraceLevel)
}

// newObserved builds a logger over an observer core capturing everything
// down to trace; the configured Level still gates emission.
func newObserved(t *testing.T, cfg Config) (*Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := newObservedCore(t)
	logger, err := NewWithCore(cfg, core)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	return logger, logs
}

func subRecord(t *testing.T, entry observer.LoggedEntry, key string) map[string]interface{} {
	t.Helper()
	v, ok := entry.ContextMap()[key]
	if !ok {
		t.Fatalf("Expected %q sub-record on entry %q", key, entry.Message)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected %q to be an object, got %T", key, v)
	}
	return m
}

// asInt normalizes the integer kinds a map encoder may store.
func asInt(t *testing.T, v interface{}) int64 {
	t.Helper()
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		t.Fatalf("Expected integer value, got %T", v)
		return 0
	}
}

func TestNew_RequiresServiceName(t *testing.T) {
	_, err := New(Config{Level: "info"})
	if err == nil {
		t.Fatal("Expected error for missing service name")
	}
}

func TestNew_RejectsInvalidLevel(t *testing.T) {
	_, err := New(Config{Service: "svc", Level: "verbose"})
	if err == nil {
		t.Fatal("Expected error for invalid level")
	}
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]Level{
		"trace": TraceLevel,
		"debug": DebugLevel,
		"info":  InfoLevel,
		"warn":  WarnLevel,
		"error": ErrorLevel,
		"fatal": FatalLevel,
	} {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseLevel("silly"); err == nil {
		t.Error("Expected error for unknown level name")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, logs := newObserved(t, Config{Service: "svc", Level: "info"})

	logger.Debug("x")
	if logs.Len() != 0 {
		t.Fatalf("Expected zero writes below minimum level, got %d", logs.Len())
	}

	logger.Info("y")
	if logs.Len() != 1 {
		t.Fatalf("Expected exactly one write, got %d", logs.Len())
	}

	entry := logs.All()[0]
	if entry.Message != "y" {
		t.Errorf("Expected message %q, got %q", "y", entry.Message)
	}
	svc := subRecord(t, entry, "service")
	if svc["name"] != "svc" {
		t.Errorf("Expected service.name %q, got %v", "svc", svc["name"])
	}
}

func TestTraceLevel(t *testing.T) {
	logger, logs := newObserved(t, Config{Service: "svc", Level: "trace"})

	logger.Trace("deep detail")
	if logs.Len() != 1 {
		t.Fatalf("Expected one write at trace, got %d", logs.Len())
	}
	if got := LevelName(logs.All()[0].Level); got != "trace" {
		t.Errorf("Expected level name trace, got %q", got)
	}
}

func TestChild_DoesNotMutateParent(t *testing.T) {
	parent, logs := newObserved(t, Config{Service: "svc", Level: "info"})

	_ = parent.Child(Context{
		Labels: map[string]interface{}{"tenant": "acme"},
		Event:  &Event{Category: "jobs"},
	})

	parent.Info("from parent")
	entry := logs.All()[0]
	if _, ok := entry.ContextMap()["labels"]; ok {
		t.Error("Parent entry must not carry the child's labels")
	}
	if _, ok := entry.ContextMap()["event"]; ok {
		t.Error("Parent entry must not carry the child's event")
	}
}

func TestChild_MergesNestedRecordsKeyByKey(t *testing.T) {
	root, logs := newObserved(t, Config{Service: "svc", Level: "info"})

	child := root.Child(Context{Event: &Event{Action: "sync", Category: "jobs"}})
	grandchild := child.Child(Context{Event: &Event{Action: "retry"}})

	grandchild.Info("merged")
	ev := subRecord(t, logs.All()[0], "event")
	if ev["action"] != "retry" {
		t.Errorf("Expected child's action to win, got %v", ev["action"])
	}
	if ev["category"] != "jobs" {
		t.Errorf("Expected inherited category to survive, got %v", ev["category"])
	}
}

func TestChild_ContextRoundTrip(t *testing.T) {
	root, logs := newObserved(t, Config{Service: "svc", Level: "info"})

	scoped := root.
		Child(Context{Labels: map[string]interface{}{"tenant": "acme"}}).
		Child(Context{Labels: map[string]interface{}{"worker": "7"}}).
		Child(Context{Meta: map[string]interface{}{"batch": 3}})

	scoped.Info("accumulated")
	labels := subRecord(t, logs.All()[0], "labels")
	if labels["tenant"] != "acme" || labels["worker"] != "7" {
		t.Errorf("Expected accumulated labels unchanged, got %v", labels)
	}
	meta := subRecord(t, logs.All()[0], "meta")
	if asInt(t, meta["batch"]) != 3 {
		t.Errorf("Expected meta.batch preserved, got %v", meta["batch"])
	}
}

func TestDataOverridesContext(t *testing.T) {
	root, logs := newObserved(t, Config{Service: "svc", Level: "info"})
	scoped := root.Child(Context{Labels: map[string]interface{}{"stage": "load"}})

	scoped.Info("override", Context{Labels: map[string]interface{}{"stage": "store"}})
	labels := subRecord(t, logs.All()[0], "labels")
	if labels["stage"] != "store" {
		t.Errorf("Expected emission data to win, got %v", labels["stage"])
	}
}

type codedError struct{ msg string }

func (e *codedError) Error() string { return e.msg }
func (e *codedError) Code() string  { return "E42" }

func TestError_NormalizesErrorValue(t *testing.T) {
	logger, logs := newObserved(t, Config{Service: "svc", Level: "info"})

	logger.Error("failed", &codedError{msg: "bad"})
	detail := subRecord(t, logs.All()[0], "error")
	if detail["type"] != "logging.codedError" {
		t.Errorf("Expected Go type name, got %v", detail["type"])
	}
	if detail["message"] != "bad" {
		t.Errorf("Expected message %q, got %v", "bad", detail["message"])
	}
	if detail["code"] != "E42" {
		t.Errorf("Expected exposed code, got %v", detail["code"])
	}
	if _, ok := detail["stackTrace"]; !ok {
		t.Error("Expected stack trace with default config")
	}
}

func TestError_ForcesFailureOutcome(t *testing.T) {
	logger, logs := newObserved(t, Config{Service: "svc", Level: "info"})

	logger.Error("failed", errors.New("boom"), Context{
		Event: &Event{Outcome: OutcomeSuccess},
	})
	ev := subRecord(t, logs.All()[0], "event")
	if ev["outcome"] != OutcomeFailure {
		t.Errorf("Expected forced failure outcome, got %v", ev["outcome"])
	}
}

func TestError_NilErrorOmitsErrorRecord(t *testing.T) {
	logger, logs := newObserved(t, Config{Service: "svc", Level: "info"})

	logger.Error("failed without cause", nil)
	entry := logs.All()[0]
	if _, ok := entry.ContextMap()["error"]; ok {
		t.Error("Expected no error sub-record for nil error")
	}
	ev := subRecord(t, entry, "event")
	if ev["outcome"] != OutcomeFailure {
		t.Errorf("Expected failure outcome even without an error value, got %v", ev["outcome"])
	}
}

func TestError_AppErrKindAndStatusCode(t *testing.T) {
	logger, logs := newObserved(t, Config{Service: "svc", Level: "info"})

	logger.Error("lookup failed", apperr.NotFound("article missing"))
	detail := subRecord(t, logs.All()[0], "error")
	if detail["type"] != "not_found" {
		t.Errorf("Expected apperr kind name, got %v", detail["type"])
	}
	if detail["code"] != "404" {
		t.Errorf("Expected status code 404, got %v", detail["code"])
	}
}

func TestError_StackTraceDisabled(t *testing.T) {
	off := false
	logger, logs := newObserved(t, Config{Service: "svc", Level: "info", StackTrace: &off})

	logger.Error("failed", errors.New("boom"))
	detail := subRecord(t, logs.All()[0], "error")
	if _, ok := detail["stackTrace"]; ok {
		t.Error("Expected no stack trace when disabled")
	}
}

func TestFatal_EmitsWithoutExiting(t *testing.T) {
	logger, logs := newObserved(t, Config{Service: "svc", Level: "info"})

	logger.Fatal("unrecoverable", errors.New("boom"))
	if logs.Len() != 1 {
		t.Fatalf("Expected one fatal entry, got %d", logs.Len())
	}
	if got := LevelName(logs.All()[0].Level); got != "fatal" {
		t.Errorf("Expected fatal level, got %q", got)
	}
}

func TestNop_DiscardsEverything(t *testing.T) {
	logger := Nop()

	// Should not panic and must not write anywhere.
	logger.Info("dropped")
	logger.Error("dropped", errors.New("boom"))
}

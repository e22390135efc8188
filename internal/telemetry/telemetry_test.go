package telemetry

import (
	"context"
	"testing"
)

func TestTracerWithoutSetup(t *testing.T) {
	Disable()

	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("spans from a disabled provider should not carry a valid context")
	}
}

func TestSessionAttributes(t *testing.T) {
	attrs := SessionAttributes("abc", 42)
	if len(attrs) != 2 {
		t.Fatalf("SessionAttributes() returned %d attributes, want 2", len(attrs))
	}
	if attrs[0].Value.AsString() != "abc" {
		t.Errorf("session.id = %q, want %q", attrs[0].Value.AsString(), "abc")
	}
	if attrs[1].Value.AsInt64() != 42 {
		t.Errorf("session.seed = %d, want 42", attrs[1].Value.AsInt64())
	}
}

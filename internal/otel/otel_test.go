package otel

import "testing"

func TestInitWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(t.Context(), "opsdesk", "")
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if shutdown == nil {
		t.Fatal("shutdown func is nil")
	}
	if err := shutdown(t.Context()); err != nil {
		t.Fatalf("shutdown() error = %v", err)
	}
}

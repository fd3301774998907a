package analytics

import (
	"context"
	"testing"
)

func TestStub_ReturnsPlaceholderForAnyUser(t *testing.T) {
	t.Parallel()

	stub := NewStub("")

	for _, id := range []int64{1, 2, 999, 0, -1} {
		got, err := stub.GetUserAnalytics(context.Background(), id)
		if err != nil {
			t.Fatalf("GetUserAnalytics(%d) error: %v", id, err)
		}
		if got != "Sample analytics data" {
			t.Errorf("GetUserAnalytics(%d) = %q, want %q", id, got, "Sample analytics data")
		}
	}
}

func TestStub_CustomPlaceholder(t *testing.T) {
	t.Parallel()

	stub := NewStub("no data yet")

	got, err := stub.GetUserAnalytics(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "no data yet" {
		t.Errorf("got %q, want %q", got, "no data yet")
	}
}

func TestStub_ImplementsProvider(t *testing.T) {
	var _ Provider = NewStub("")
}

package journal

import (
	"context"
	"testing"
)

func TestMemoryRepositoryLatest(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, NewEntry(ctx, "c1", StatusStarted, "", "[]", nil)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Save(ctx, NewEntry(ctx, "c1", StatusCompleted, "", "", nil)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Save(ctx, NewEntry(ctx, "c2", StatusStarted, "", "[]", nil)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	latest, err := repo.Latest(ctx, "c1")
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.Status != StatusCompleted {
		t.Fatalf("Latest status = %s, want COMPLETED", latest.Status)
	}

	if _, err := repo.Latest(ctx, "missing"); err == nil {
		t.Fatal("expected an error for an unknown checkout id")
	}
}

func TestNewEntryMarshalsErrors(t *testing.T) {
	ctx := context.Background()

	entry := NewEntry(ctx, "c1", StatusFailed, "Pricing_Step", "", []string{"Customer's balance is insufficient"})
	if entry.ErrorMessages != `["Customer's balance is insufficient"]` {
		t.Fatalf("ErrorMessages = %s", entry.ErrorMessages)
	}

	empty := NewEntry(ctx, "c1", StatusStepDone, "Pricing_Step", "", nil)
	if empty.ErrorMessages != "[]" {
		t.Fatalf("ErrorMessages = %s, want []", empty.ErrorMessages)
	}

	// No active span in plain contexts: ids stay empty.
	if entry.TraceID != "" || entry.SpanID != "" {
		t.Fatalf("expected empty trace ids, got %s/%s", entry.TraceID, entry.SpanID)
	}
}

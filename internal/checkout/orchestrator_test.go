package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/journal"
)

// recordingStep notes execute/compensate calls into a shared trace slice.
type recordingStep struct {
	name    string
	execErr error
	trace   *[]string
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) Execute(ctx context.Context) error {
	*s.trace = append(*s.trace, "exec:"+s.name)
	return s.execErr
}

func (s *recordingStep) Compensate(ctx context.Context) error {
	*s.trace = append(*s.trace, "comp:"+s.name)
	return nil
}

func TestOrchestratorRunsStepsInOrder(t *testing.T) {
	var trace []string
	steps := []Step{
		&recordingStep{name: "a", trace: &trace},
		&recordingStep{name: "b", trace: &trace},
		&recordingStep{name: "c", trace: &trace},
	}

	orch := NewOrchestrator("run-1", steps, nil)
	if err := orch.Run(context.Background(), "{}"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"exec:a", "exec:b", "exec:c"}
	assertTrace(t, trace, want)
}

func TestOrchestratorCompensatesLIFO(t *testing.T) {
	var trace []string
	boom := errors.New("step c rejected")
	steps := []Step{
		&recordingStep{name: "a", trace: &trace},
		&recordingStep{name: "b", trace: &trace},
		&recordingStep{name: "c", trace: &trace, execErr: boom},
	}

	orch := NewOrchestrator("run-2", steps, nil)
	err := orch.Run(context.Background(), "{}")
	if !errors.Is(err, boom) {
		t.Fatalf("Run returned %v, want the step error unchanged", err)
	}

	want := []string{"exec:a", "exec:b", "exec:c", "comp:b", "comp:a"}
	assertTrace(t, trace, want)
}

func TestOrchestratorFirstStepFailureSkipsCompensation(t *testing.T) {
	var trace []string
	boom := errors.New("rejected")
	steps := []Step{
		&recordingStep{name: "a", trace: &trace, execErr: boom},
		&recordingStep{name: "b", trace: &trace},
	}

	repo := journal.NewMemoryRepository()
	orch := NewOrchestrator("run-3", steps, repo)
	if err := orch.Run(context.Background(), "{}"); !errors.Is(err, boom) {
		t.Fatalf("Run returned %v, want %v", err, boom)
	}

	assertTrace(t, trace, []string{"exec:a"})

	// Nothing completed, so no COMPENSATING entry: STARTED then FAILED.
	entries := repo.All()
	if len(entries) != 2 || entries[1].Status != journal.StatusFailed {
		t.Fatalf("unexpected journal entries: %+v", entries)
	}
}

func TestOrchestratorJournalsLifecycle(t *testing.T) {
	var trace []string
	steps := []Step{
		&recordingStep{name: "a", trace: &trace},
		&recordingStep{name: "b", trace: &trace},
	}

	repo := journal.NewMemoryRepository()
	orch := NewOrchestrator("run-4", steps, repo)
	if err := orch.Run(context.Background(), `[{"name":"Cheese","quantity":2}]`); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var statuses []journal.Status
	for _, e := range repo.All() {
		statuses = append(statuses, e.Status)
	}

	want := []journal.Status{
		journal.StatusStarted,
		journal.StatusStepDone,
		journal.StatusStepDone,
		journal.StatusCompleted,
	}
	if len(statuses) != len(want) {
		t.Fatalf("journal statuses = %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Fatalf("journal statuses = %v, want %v", statuses, want)
		}
	}

	if got := repo.All()[0].Payload; got != `[{"name":"Cheese","quantity":2}]` {
		t.Fatalf("STARTED payload = %s", got)
	}
}

func assertTrace(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("trace = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("trace = %v, want %v", got, want)
		}
	}
}

package checkout

import (
	"context"
	"log/slog"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/journal"
)

// Step is a single unit of work in a checkout run. Steps that mutate state
// must have a compensating action to undo their effects; pure validation
// steps compensate with a no-op.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// Orchestrator runs a checkout's steps sequentially. When a step fails it
// compensates all previously successful steps in LIFO order and returns the
// step's error unchanged, so abort conditions survive to the caller.
//
// Every transition is appended to the journal; a nil repository disables
// journaling.
type Orchestrator struct {
	checkoutID string
	steps      []Step
	journal    journal.Repository
}

func NewOrchestrator(checkoutID string, steps []Step, repo journal.Repository) *Orchestrator {
	return &Orchestrator{checkoutID: checkoutID, steps: steps, journal: repo}
}

// Run executes the steps in order. payload is the JSON-serialised input,
// stored once on the STARTED entry.
func (o *Orchestrator) Run(ctx context.Context, payload string) error {
	o.record(ctx, journal.StatusStarted, "", payload, nil)

	var completed []Step

	for _, step := range o.steps {
		slog.InfoContext(ctx, "executing checkout step", "checkout_id", o.checkoutID, "step", step.Name())

		if err := step.Execute(ctx); err != nil {
			slog.InfoContext(ctx, "checkout step failed", "checkout_id", o.checkoutID, "step", step.Name(), "error", err)

			errs := []string{err.Error()}
			if len(completed) > 0 {
				o.record(ctx, journal.StatusCompensating, step.Name(), "", errs)
				errs = append(errs, o.rollback(ctx, completed)...)
			}
			o.record(ctx, journal.StatusFailed, step.Name(), "", errs)
			return err
		}

		completed = append(completed, step)
		o.record(ctx, journal.StatusStepDone, step.Name(), "", nil)
	}

	o.record(ctx, journal.StatusCompleted, "", "", nil)
	return nil
}

// rollback compensates the completed steps in reverse order. Compensation
// failures are collected, not fatal: the remaining steps still get their
// chance to undo.
func (o *Orchestrator) rollback(ctx context.Context, completed []Step) []string {
	var errs []string
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		slog.InfoContext(ctx, "compensating checkout step", "checkout_id", o.checkoutID, "step", step.Name())
		if err := step.Compensate(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to compensate checkout step", "checkout_id", o.checkoutID, "step", step.Name(), "error", err)
			errs = append(errs, "compensation of "+step.Name()+" failed: "+err.Error())
		}
	}
	return errs
}

func (o *Orchestrator) record(ctx context.Context, status journal.Status, step, payload string, errs []string) {
	if o.journal == nil {
		return
	}
	entry := journal.NewEntry(ctx, o.checkoutID, status, step, payload, errs)
	if err := o.journal.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to save journal entry", "checkout_id", o.checkoutID, "error", err)
	}
}

// Package journal keeps an append-only audit trail of checkout runs.
//
// Every state transition a checkout goes through is recorded as one entry,
// so the trail answers "where did checkout X stop and why" and can be
// correlated with a distributed trace through the trace_id field.
package journal

import "time"

// Status is the lifecycle state of a checkout run.
type Status string

const (
	StatusStarted      Status = "STARTED"
	StatusStepDone     Status = "STEP_DONE"
	StatusCompleted    Status = "COMPLETED"
	StatusCompensating Status = "COMPENSATING"
	StatusFailed       Status = "FAILED"
)

// Entry is a point-in-time snapshot of a checkout run.
type Entry struct {
	// CheckoutID identifies the run. One checkout produces many entries.
	CheckoutID string

	// Status is the lifecycle state at the time the entry was written.
	Status Status

	// CurrentStep is the step that just executed (or failed). Empty on the
	// STARTED entry.
	CurrentStep string

	// Payload is the JSON-serialised input that started the checkout.
	// Written once on STARTED.
	Payload string

	// ErrorMessages is a JSON array of failure details, one per failed
	// step or compensation.
	ErrorMessages string

	// TraceID and SpanID come from the OpenTelemetry span active when the
	// entry was written. Empty when no span is active (unit tests).
	TraceID string
	SpanID  string

	UpdatedAt time.Time
}

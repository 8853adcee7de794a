package journal

import "context"

// Repository is the port for persisting journal entries. The orchestrator
// depends on this abstraction, not on a concrete store. Save appends; the
// journal is an event log, never an upsert.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error
}

// Package store archives resolved session states so consumers can diff
// a fresh resolution against the previous record for a caller.
package store

import (
	"context"
	"time"

	"github.com/abhisek/tutorstate/internal/resolve"
)

// Entry is one archived resolution row.
type Entry struct {
	ID         string    `json:"id"`
	CallerID   string    `json:"caller_id"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Archive persists immutable resolution records.
type Archive interface {
	// Save stores a resolved state and returns the archive row ID.
	Save(ctx context.Context, state *resolve.SessionState) (string, error)

	// Latest returns the most recent state for a caller, or nil if none
	// exist.
	Latest(ctx context.Context, callerID string) (*resolve.SessionState, error)

	// List returns archive entries for a caller, newest first.
	List(ctx context.Context, callerID string, limit int) ([]Entry, error)

	// Prune deletes all but the N most recent records for a caller.
	Prune(ctx context.Context, callerID string, keep int) error
}

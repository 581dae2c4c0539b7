// Package resolve orchestrates the per-concern resolvers into one
// immutable resolved session state per request. It performs no I/O; all
// inputs arrive as prefetched snapshots and concurrent resolutions for
// different callers share no state.
package resolve

import (
	"time"

	"github.com/abhisek/tutorstate/internal/behavior"
	"github.com/abhisek/tutorstate/internal/curriculum"
	"github.com/abhisek/tutorstate/internal/memory"
	"github.com/abhisek/tutorstate/internal/review"
	"github.com/abhisek/tutorstate/internal/trust"
)

// Snapshot is the immutable input to one resolution: everything the
// data-fetching collaborator gathered about a caller. The engine never
// mutates it.
type Snapshot struct {
	SchemaVersion     string                 `json:"schema_version"`
	CallerID          string                 `json:"caller_id"`
	PlaybookID        string                 `json:"playbook_id,omitempty"`
	InteractionCount  int                    `json:"interaction_count"`
	LastInteractionAt *time.Time             `json:"last_interaction_at,omitempty"`
	Parameters        []behavior.Parameter   `json:"parameters,omitempty"`
	Targets           []behavior.Target      `json:"targets,omitempty"`
	CallerTargets     []behavior.CallerTarget `json:"caller_targets,omitempty"`
	Modules           []curriculum.Module    `json:"modules,omitempty"`
	Attributes        []curriculum.Attribute `json:"attributes,omitempty"`
	Memories          []memory.Record        `json:"memories,omitempty"`
}

// SessionState is the fully-resolved, machine-consumable state for one
// interaction. Created fresh per resolution and never mutated; a new
// request produces a new record.
type SessionState struct {
	ID         string                        `json:"id"`
	CallerID   string                        `json:"caller_id"`
	PlaybookID string                        `json:"playbook_id,omitempty"`
	ResolvedAt time.Time                     `json:"resolved_at"`
	Targets    map[string]behavior.Effective `json:"targets"`
	Curriculum curriculum.Progress           `json:"curriculum"`
	Review     review.Plan                   `json:"review"`
	Memories   map[string][]memory.Record    `json:"memories"`
	Trust      *trust.Progress               `json:"trust,omitempty"`
}

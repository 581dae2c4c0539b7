// Package curriculum determines a caller's position in an ordered module
// sequence from explicit mastery signals, falling back to a labeled
// heuristic estimate when explicit tracking is absent.
package curriculum

// Module is a single curriculum unit. Prerequisites are declarative;
// sequencing is driven by Position, not a DAG walk.
type Module struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Position         int      `json:"position"`
	Prerequisites    []string `json:"prerequisites,omitempty"`
	MasteryThreshold float64  `json:"mastery_threshold,omitempty"`
	TrustLevel       string   `json:"trust_level,omitempty"`
}

// Status describes a module's state relative to the caller.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
	StatusNotStarted Status = "not_started"
)

// ModuleStatus pairs a module slug with its per-caller status for
// reporting.
type ModuleStatus struct {
	Slug   string `json:"slug"`
	Status Status `json:"status"`
}

package curriculum

import (
	"sort"
	"strings"
	"time"
)

// DefaultMasteryThreshold is the numeric attribute value at or above
// which a module counts as mastered.
const DefaultMasteryThreshold = 0.7

// interactionsPerModule is the pacing assumption behind the fallback
// heuristic: roughly one module mastered per two interactions. A
// placeholder policy, not a measured constant.
const interactionsPerModule = 2

// Attribute key markers that carry mastery signals. The module slug
// follows the marker.
const (
	masteryMarker   = "mastery_"
	completedMarker = "completed_"
)

// Progress is the estimator's view of a caller's curriculum position.
// When IsEstimated is true the position is a heuristic guess, never
// confirmed mastery.
type Progress struct {
	Completed          map[string]bool `json:"completed"`
	CompletedCount     int             `json:"completed_count"`
	LastCompletedIndex int             `json:"last_completed_index"` // -1 = no module touched
	Next               *Module         `json:"next,omitempty"`
	Review             *Module         `json:"review,omitempty"`
	EstimatedProgress  int             `json:"estimated_progress"`
	IsEstimated        bool            `json:"is_estimated"`
	Statuses           []ModuleStatus  `json:"statuses,omitempty"`
	ModuleCount        int             `json:"module_count"`
}

// Estimator infers curriculum position from caller attributes.
type Estimator struct {
	// MasteryThreshold is the numeric bar for mastery-confirming
	// attributes. Zero means DefaultMasteryThreshold.
	MasteryThreshold float64
}

// Estimate determines completed modules, the module to review, and the
// next module for a caller.
//
// Attributes whose key embeds "mastery_" or "completed_" followed by a
// known module slug confirm mastery when their value is boolean true or
// a number at or above the threshold. When no attribute confirms any
// module, position falls back to the interaction-count heuristic and the
// result is flagged IsEstimated.
func (e Estimator) Estimate(modules []Module, attrs []Attribute, interactionCount int, now time.Time) Progress {
	threshold := e.MasteryThreshold
	if threshold == 0 {
		threshold = DefaultMasteryThreshold
	}
	if now.IsZero() {
		now = time.Now()
	}

	prog := Progress{
		Completed:          make(map[string]bool),
		LastCompletedIndex: -1,
		ModuleCount:        len(modules),
	}
	if len(modules) == 0 {
		return prog
	}

	ordered := make([]Module, len(modules))
	copy(ordered, modules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	indexBySlug := make(map[string]int, len(ordered))
	for i, m := range ordered {
		indexBySlug[m.Slug] = i
	}

	for _, a := range attrs {
		if !a.ValidAt(now) {
			continue
		}
		slug, ok := slugFromKey(a.Key)
		if !ok {
			continue
		}
		idx, known := indexBySlug[slug]
		if !known {
			continue
		}
		bar := threshold
		if mt := ordered[idx].MasteryThreshold; mt > 0 {
			bar = mt
		}
		if a.Value.confirmsMastery(bar) {
			prog.Completed[slug] = true
			if idx > prog.LastCompletedIndex {
				prog.LastCompletedIndex = idx
			}
		}
	}

	if len(prog.Completed) > 0 {
		prog.CompletedCount = len(prog.Completed)
		prog.EstimatedProgress = prog.CompletedCount
	} else if interactionCount > 0 {
		est := interactionCount / interactionsPerModule
		if est > len(ordered)-1 {
			est = len(ordered) - 1
		}
		prog.EstimatedProgress = est
		prog.LastCompletedIndex = est - 1
		if prog.LastCompletedIndex < 0 {
			prog.LastCompletedIndex = 0
		}
		prog.IsEstimated = true
	}
	// interactionCount == 0 with no confirmed mastery leaves the
	// curriculum untouched: LastCompletedIndex stays -1.

	if prog.LastCompletedIndex >= 0 {
		m := ordered[prog.LastCompletedIndex]
		prog.Review = &m
	}
	if next := prog.LastCompletedIndex + 1; next < len(ordered) {
		m := ordered[next]
		prog.Next = &m
	}

	prog.Statuses = make([]ModuleStatus, len(ordered))
	for i, m := range ordered {
		status := StatusNotStarted
		switch {
		case prog.Completed[m.Slug]:
			status = StatusCompleted
		case i <= prog.LastCompletedIndex && interactionCount > 0:
			status = StatusInProgress
		}
		prog.Statuses[i] = ModuleStatus{Slug: m.Slug, Status: status}
	}

	return prog
}

// slugFromKey extracts the module slug from a mastery-signal attribute
// key, or reports false when the key carries no marker.
func slugFromKey(key string) (string, bool) {
	lower := strings.ToLower(key)
	for _, marker := range []string{masteryMarker, completedMarker} {
		if i := strings.Index(lower, marker); i >= 0 {
			slug := lower[i+len(marker):]
			if slug != "" {
				return slug, true
			}
		}
	}
	return "", false
}

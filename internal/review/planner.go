package review

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/tutorstate/internal/curriculum"
	"github.com/abhisek/tutorstate/internal/memory"
)

// Step is one ordered element of a session flow.
type Step struct {
	Name     string `json:"name"`
	Guidance string `json:"guidance"`
}

// Tension flags a caller-expressed interest that points at a module the
// curriculum has not reached yet. The guidance is acknowledge-but-defer,
// never skip ahead.
type Tension struct {
	Interest   string `json:"interest"`
	ModuleSlug string `json:"module_slug"`
	Guidance   string `json:"guidance"`
}

// Plan is the fully-resolved session flow for one interaction.
type Plan struct {
	Type     Type      `json:"review_type"`
	Reason   string    `json:"review_reason"`
	Steps    []Step    `json:"steps"`
	Tensions []Tension `json:"tensions,omitempty"`
}

// Planner builds session plans from curriculum position and the elapsed
// gap. It never fails; every input combination maps to a flow.
type Planner struct{}

// BuildPlan constructs the session plan.
//
// A first interaction bypasses the gap table entirely and gets the
// welcome flow. An exhausted curriculum (no next module) gets the
// deepen-mastery flow. Everything else gets the seven-step returning
// flow keyed to the gap-derived review type.
func (Planner) BuildPlan(prog curriculum.Progress, modules []curriculum.Module, daysElapsed float64, isFirstInteraction bool, interests []memory.Record) Plan {
	if isFirstInteraction {
		return Plan{
			Type:   TypeQuickRecall,
			Reason: "first session; no prior material to review",
			Steps:  firstSessionFlow(prog.Next),
		}
	}

	rt := TypeForGap(daysElapsed)
	plan := Plan{
		Type:     rt,
		Reason:   rt.Reason(),
		Tensions: detectTensions(interests, futureModules(prog, modules)),
	}

	if prog.Next == nil {
		plan.Steps = deepenMasteryFlow(prog.Review, rt)
		return plan
	}

	plan.Steps = returningFlow(prog.Review, prog.Next, rt)
	return plan
}

func firstSessionFlow(first *curriculum.Module) []Step {
	intro := "introduce the first module"
	if first != nil {
		intro = fmt.Sprintf("introduce %q", first.Name)
	}
	return []Step{
		{Name: "welcome", Guidance: "greet the caller and set expectations for how sessions work"},
		{Name: "probe_prior_knowledge", Guidance: "ask open questions to gauge what the caller already knows"},
		{Name: "introduce_module", Guidance: intro},
		{Name: "check_understanding", Guidance: "ask the caller to restate the core idea in their own words"},
		{Name: "summarize_preview", Guidance: "recap what was covered and preview the next session"},
	}
}

func returningFlow(review, next *curriculum.Module, rt Type) []Step {
	retrieval := fmt.Sprintf("pose a %s question", rt)
	if review != nil {
		retrieval = fmt.Sprintf("pose a %s question on %q", rt, review.Name)
	}
	introduce := "introduce the next module"
	if next != nil {
		introduce = fmt.Sprintf("introduce %q", next.Name)
	}
	return []Step{
		{Name: "reconnect", Guidance: "re-establish rapport and reference the last session"},
		{Name: "spaced_retrieval", Guidance: retrieval},
		{Name: "reinforce_correct", Guidance: "reinforce a correct answer or gently correct and re-explain"},
		{Name: "bridge", Guidance: "connect the reviewed material to what comes next"},
		{Name: "introduce_next", Guidance: introduce},
		{Name: "integrated_question", Guidance: "ask one question combining the old and new material"},
		{Name: "close", Guidance: "summarize progress and close warmly"},
	}
}

func deepenMasteryFlow(review *curriculum.Module, rt Type) []Step {
	focus := "previously mastered material"
	if review != nil {
		focus = fmt.Sprintf("%q", review.Name)
	}
	return []Step{
		{Name: "reconnect", Guidance: "re-establish rapport and acknowledge completing the curriculum"},
		{Name: "spaced_retrieval", Guidance: fmt.Sprintf("pose a %s question on %s", rt, focus)},
		{Name: "deepen", Guidance: "push into harder applications and edge cases of mastered material"},
		{Name: "synthesize", Guidance: "ask the caller to connect ideas across modules"},
		{Name: "close", Guidance: "celebrate mastery and invite caller-driven topics"},
	}
}

// futureModules returns the modules past the caller's current position,
// in position order.
func futureModules(prog curriculum.Progress, modules []curriculum.Module) []curriculum.Module {
	ordered := make([]curriculum.Module, len(modules))
	copy(ordered, modules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})
	start := prog.LastCompletedIndex + 1
	if start < 0 || start >= len(ordered) {
		return nil
	}
	return ordered[start:]
}

// detectTensions flags interests whose text overlaps a future module's
// name or description (case-insensitive substring, either direction).
func detectTensions(interests []memory.Record, future []curriculum.Module) []Tension {
	var tensions []Tension
	for _, interest := range interests {
		text := strings.ToLower(strings.TrimSpace(interest.Value))
		if text == "" {
			text = strings.ReplaceAll(strings.ToLower(interest.Key), "_", " ")
		}
		if text == "" {
			continue
		}
		for _, m := range future {
			if overlaps(text, m) {
				tensions = append(tensions, Tension{
					Interest:   text,
					ModuleSlug: m.Slug,
					Guidance: fmt.Sprintf(
						"acknowledge interest in %q and explain it is covered by %q later; do not skip ahead or answer unscaffolded",
						text, m.Name),
				})
				break
			}
		}
	}
	return tensions
}

func overlaps(interest string, m curriculum.Module) bool {
	name := strings.ToLower(m.Name)
	desc := strings.ToLower(m.Description)
	if name != "" && (strings.Contains(interest, name) || strings.Contains(name, interest)) {
		return true
	}
	if desc != "" && strings.Contains(desc, interest) {
		return true
	}
	return false
}

package resolve

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/tutorstate/internal/behavior"
	"github.com/abhisek/tutorstate/internal/curriculum"
	"github.com/abhisek/tutorstate/internal/memory"
	"github.com/abhisek/tutorstate/internal/review"
	"github.com/abhisek/tutorstate/internal/trust"
)

// Assembler fans the snapshot out to the per-concern resolvers and
// collects one SessionState. It owns no decision logic of its own;
// missing optional inputs resolve to neutral defaults, never failure.
type Assembler struct {
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

// NewAssembler creates an assembler. A nil logger disables anomaly
// logging.
func NewAssembler(cfg Config, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{cfg: cfg, logger: logger, now: time.Now}
}

// Resolve computes the session state for one caller from an immutable
// snapshot. It never returns an error: absent inputs are
// missing-data conditions, not failures. A panic here indicates a logic
// bug in the engine, not bad input.
func (a *Assembler) Resolve(snap Snapshot) *SessionState {
	now := a.now()

	memories := activeMemories(snap.Memories, now)
	deduped := memory.Deduplicate(memories, a.cfg.MemoriesPerCategory)

	targets := behavior.Resolve(snap.Targets, snap.CallerTargets, behavior.ResolveOptions{
		PlaybookID:    snap.PlaybookID,
		HighThreshold: a.cfg.HighThreshold,
		LowThreshold:  a.cfg.LowThreshold,
		Now:           now,
	}, a.logger)

	estimator := curriculum.Estimator{MasteryThreshold: a.cfg.MasteryConfirmationThreshold}
	prog := estimator.Estimate(snap.Modules, snap.Attributes, snap.InteractionCount, now)

	isFirst := snap.InteractionCount == 0
	days := daysSince(snap.LastInteractionAt, now, isFirst)

	plan := review.Planner{}.BuildPlan(prog, snap.Modules, days, isFirst, interestMemories(deduped))

	state := &SessionState{
		ID:         uuid.NewString(),
		CallerID:   snap.CallerID,
		PlaybookID: snap.PlaybookID,
		ResolvedAt: now,
		Targets:    targets,
		Curriculum: prog,
		Review:     plan,
		Memories:   memory.ByCategory(deduped),
	}

	if trust.HasTrustData(snap.Modules) {
		tp := trust.Compute(snap.Modules, prog.Completed, a.cfg.TrustBar)
		state.Trust = &tp
	}

	a.checkInvariants(snap, state, now)
	return state
}

// activeMemories drops expired records before deduplication.
func activeMemories(records []memory.Record, now time.Time) []memory.Record {
	var out []memory.Record
	for _, r := range records {
		if r.Active(now) {
			out = append(out, r)
		}
	}
	return out
}

// interestMemories picks the caller-expressed interest records for
// tension detection: anything keyed or categorized as an interest.
func interestMemories(records []memory.Record) []memory.Record {
	var out []memory.Record
	for _, r := range records {
		if strings.Contains(r.Key, "interest") || strings.EqualFold(r.Category, "INTEREST") {
			out = append(out, r)
		}
	}
	return out
}

// daysSince converts the last-interaction timestamp to elapsed days. A
// returning caller with no recorded timestamp is treated as maximally
// stale so review intensity errs toward rebuilding.
func daysSince(last *time.Time, now time.Time, isFirst bool) float64 {
	if last == nil || last.IsZero() {
		if isFirst {
			return 0
		}
		return review.ReintroduceAfterDays
	}
	days := now.Sub(*last).Hours() / 24.0
	if days < 0 {
		return 0
	}
	return days
}

// checkInvariants panics when resolution produced an internally
// inconsistent state. These are programmer errors, never input errors.
func (a *Assembler) checkInvariants(snap Snapshot, state *SessionState, now time.Time) {
	for _, t := range snap.Targets {
		if !t.Active(now) {
			continue
		}
		if t.Scope == behavior.ScopePlaybook && t.EntityID != snap.PlaybookID {
			continue
		}
		if _, ok := state.Targets[t.ParameterID]; !ok {
			panic(fmt.Sprintf("resolve: effective map missing parameter %q after resolution", t.ParameterID))
		}
	}
	for _, ct := range snap.CallerTargets {
		if _, ok := state.Targets[ct.ParameterID]; !ok {
			panic(fmt.Sprintf("resolve: effective map missing personalized parameter %q", ct.ParameterID))
		}
	}
	if idx := state.Curriculum.LastCompletedIndex; idx != -1 && (idx < 0 || idx >= state.Curriculum.ModuleCount) {
		panic(fmt.Sprintf("resolve: module index %d out of bounds [0,%d)", idx, state.Curriculum.ModuleCount))
	}
}

package behavior

import (
	"time"

	"go.uber.org/zap"
)

// ResolveOptions configures one cascade resolution pass.
type ResolveOptions struct {
	// PlaybookID selects which playbook's targets are eligible. Playbook
	// targets for any other playbook are ignored entirely.
	PlaybookID string

	// HighThreshold and LowThreshold drive band classification.
	HighThreshold float64
	LowThreshold  float64

	// Now anchors expiry checks. Zero means time.Now().
	Now time.Time
}

// Resolve merges scoped targets and personalized caller targets into one
// effective value per parameter.
//
// Personalized targets are terminal: a scoped target can never override
// them. Among scoped targets the higher cascade priority wins; on equal
// priority the most recently updated target wins and the conflict is
// logged as an anomaly. Expired targets and playbook targets for a
// non-active playbook never participate.
//
// Parameters with no target anywhere are absent from the result map;
// consumers fall back to DefaultTargetValue.
func Resolve(targets []Target, callerTargets []CallerTarget, opts ResolveOptions, logger *zap.Logger) map[string]Effective {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	resolved := make(map[string]Effective)

	// Personalized overrides seed the map and cannot be displaced. If a
	// caller somehow has duplicate entries for one parameter, the most
	// recently updated one wins.
	seededAt := make(map[string]time.Time)
	for _, ct := range callerTargets {
		if prev, ok := seededAt[ct.ParameterID]; ok && !ct.UpdatedAt.After(prev) {
			continue
		}
		seededAt[ct.ParameterID] = ct.UpdatedAt
		resolved[ct.ParameterID] = Effective{
			ParameterID: ct.ParameterID,
			Value:       ct.Value,
			Confidence:  ct.Confidence,
			Source:      ScopeCallerPersonalized,
			Band:        BandFor(ct.Value, opts.HighThreshold, opts.LowThreshold),
		}
	}

	best := make(map[string]Target)
	for _, t := range targets {
		if !t.Active(now) {
			continue
		}
		if t.Scope == ScopePlaybook && t.EntityID != opts.PlaybookID {
			continue
		}
		if _, terminal := seededAt[t.ParameterID]; terminal {
			continue
		}

		cur, ok := best[t.ParameterID]
		if !ok {
			best[t.ParameterID] = t
			continue
		}
		switch {
		case t.Scope.Priority() > cur.Scope.Priority():
			best[t.ParameterID] = t
		case t.Scope.Priority() == cur.Scope.Priority():
			logger.Warn("equal-priority target conflict",
				zap.String("parameter", t.ParameterID),
				zap.String("scope", string(t.Scope)),
			)
			if t.UpdatedAt.After(cur.UpdatedAt) {
				best[t.ParameterID] = t
			}
		}
	}

	for id, t := range best {
		resolved[id] = Effective{
			ParameterID: id,
			Value:       t.Value,
			Confidence:  t.Confidence,
			Source:      t.Scope,
			Band:        BandFor(t.Value, opts.HighThreshold, opts.LowThreshold),
		}
	}

	return resolved
}

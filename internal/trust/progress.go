// Package trust computes progress discounted by the provenance level of
// the underlying module content. Mastery of unverified content must not
// be reported with the same confidence as mastery of verified content.
package trust

import "github.com/abhisek/tutorstate/internal/curriculum"

// Level is a content provenance tag.
type Level string

const (
	LevelVerified   Level = "verified"
	LevelCurated    Level = "curated"
	LevelUnverified Level = "unverified"
)

// rank orders levels so a configurable bar can be applied. Untagged
// modules rank as unverified.
func rank(l Level) int {
	switch l {
	case LevelVerified:
		return 2
	case LevelCurated:
		return 1
	default:
		return 0
	}
}

// Meets reports whether the level satisfies the bar.
func (l Level) Meets(bar Level) bool {
	return rank(l) >= rank(bar)
}

// Progress carries the two parallel progress tracks.
type Progress struct {
	// Raw is completed / total over all modules.
	Raw float64 `json:"raw"`

	// TrustWeighted counts only modules whose trust level meets the bar,
	// in both numerator and denominator. 0 when no module meets the bar.
	TrustWeighted float64 `json:"trust_weighted"`

	// Bar is the trust level the weighted track was computed against.
	Bar Level `json:"bar"`
}

// Compute derives both tracks from the completed set. Pure aggregation;
// the module list is never modified.
func Compute(modules []curriculum.Module, completed map[string]bool, bar Level) Progress {
	p := Progress{Bar: bar}
	if len(modules) == 0 {
		return p
	}

	var done, trustedTotal, trustedDone int
	for _, m := range modules {
		isDone := completed[m.Slug]
		if isDone {
			done++
		}
		if Level(m.TrustLevel).Meets(bar) {
			trustedTotal++
			if isDone {
				trustedDone++
			}
		}
	}

	p.Raw = float64(done) / float64(len(modules))
	if trustedTotal > 0 {
		p.TrustWeighted = float64(trustedDone) / float64(trustedTotal)
	}
	return p
}

// HasTrustData reports whether any module carries a provenance tag.
// When none do, the weighted track adds no information and the
// assembler skips it.
func HasTrustData(modules []curriculum.Module) bool {
	for _, m := range modules {
		if m.TrustLevel != "" {
			return true
		}
	}
	return false
}

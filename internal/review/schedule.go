// Package review selects a spaced-review intensity from the elapsed gap
// since the last session and builds the session flow plan.
package review

// Type is the review intensity for a returning caller.
type Type string

const (
	TypeQuickRecall Type = "quick_recall" // 0-2 days: brief retrieval question
	TypeApplication Type = "application"  // 3-6 days: applied use to verify retention
	TypeDeepReview  Type = "deep_review"  // 7-13 days: rebuild with a fresh example
	TypeReintroduce Type = "reintroduce"  // 14+ days: rebuild understanding from scratch
)

// Gap break points in days. Evaluated longest-gap first.
const (
	ReintroduceAfterDays = 14
	DeepReviewAfterDays  = 7
	ApplicationAfterDays = 3
)

// TypeForGap returns the review type for the number of days since the
// last interaction.
func TypeForGap(daysElapsed float64) Type {
	switch {
	case daysElapsed >= ReintroduceAfterDays:
		return TypeReintroduce
	case daysElapsed >= DeepReviewAfterDays:
		return TypeDeepReview
	case daysElapsed >= ApplicationAfterDays:
		return TypeApplication
	default:
		return TypeQuickRecall
	}
}

// Intensity returns the rank of a review type on the
// quick_recall < application < deep_review < reintroduce ladder.
func (t Type) Intensity() int {
	switch t {
	case TypeQuickRecall:
		return 0
	case TypeApplication:
		return 1
	case TypeDeepReview:
		return 2
	case TypeReintroduce:
		return 3
	default:
		return 0
	}
}

// Reason returns the rationale for a review type, for session notes.
func (t Type) Reason() string {
	switch t {
	case TypeReintroduce:
		return "long gap since last session; rebuild understanding from scratch"
	case TypeDeepReview:
		return "week-long gap; rebuild the concept with a fresh example"
	case TypeApplication:
		return "several days since last session; require applied use to verify retention"
	case TypeQuickRecall:
		return "recent session; brief retrieval-practice question"
	default:
		return ""
	}
}

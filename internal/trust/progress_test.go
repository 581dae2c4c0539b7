package trust

import (
	"testing"

	"github.com/abhisek/tutorstate/internal/curriculum"
)

func TestCompute_TwoTracks(t *testing.T) {
	modules := []curriculum.Module{
		{Slug: "a", TrustLevel: "verified"},
		{Slug: "b", TrustLevel: "unverified"},
		{Slug: "c", TrustLevel: "verified"},
		{Slug: "d", TrustLevel: "unverified"},
	}
	completed := map[string]bool{"a": true, "b": true}

	p := Compute(modules, completed, LevelVerified)

	if p.Raw != 0.5 {
		t.Errorf("Raw = %v, want 0.5", p.Raw)
	}
	// Only a and c are verified; only a is completed.
	if p.TrustWeighted != 0.5 {
		t.Errorf("TrustWeighted = %v, want 0.5", p.TrustWeighted)
	}
}

func TestCompute_UnverifiedMasteryDiscounted(t *testing.T) {
	modules := []curriculum.Module{
		{Slug: "a", TrustLevel: "unverified"},
		{Slug: "b", TrustLevel: "verified"},
	}
	completed := map[string]bool{"a": true}

	p := Compute(modules, completed, LevelVerified)

	if p.Raw != 0.5 {
		t.Errorf("Raw = %v, want 0.5", p.Raw)
	}
	if p.TrustWeighted != 0 {
		t.Errorf("TrustWeighted = %v, want 0 (only unverified content mastered)", p.TrustWeighted)
	}
}

func TestCompute_CuratedBar(t *testing.T) {
	modules := []curriculum.Module{
		{Slug: "a", TrustLevel: "curated"},
		{Slug: "b", TrustLevel: "unverified"},
	}
	completed := map[string]bool{"a": true, "b": true}

	p := Compute(modules, completed, LevelCurated)

	if p.TrustWeighted != 1.0 {
		t.Errorf("TrustWeighted = %v, want 1.0 (curated meets curated bar)", p.TrustWeighted)
	}
}

func TestCompute_NoModules(t *testing.T) {
	p := Compute(nil, nil, LevelVerified)
	if p.Raw != 0 || p.TrustWeighted != 0 {
		t.Errorf("got %+v, want zeros", p)
	}
}

func TestCompute_NothingMeetsBar(t *testing.T) {
	modules := []curriculum.Module{{Slug: "a"}, {Slug: "b"}}
	p := Compute(modules, map[string]bool{"a": true}, LevelVerified)
	if p.TrustWeighted != 0 {
		t.Errorf("TrustWeighted = %v, want 0 when no module meets the bar", p.TrustWeighted)
	}
}

func TestMeets(t *testing.T) {
	if !LevelVerified.Meets(LevelUnverified) {
		t.Error("verified should meet the unverified bar")
	}
	if LevelUnverified.Meets(LevelVerified) {
		t.Error("unverified should not meet the verified bar")
	}
	if !Level("").Meets(LevelUnverified) {
		t.Error("untagged should rank as unverified")
	}
}

func TestHasTrustData(t *testing.T) {
	if HasTrustData([]curriculum.Module{{Slug: "a"}}) {
		t.Error("untagged modules should report no trust data")
	}
	if !HasTrustData([]curriculum.Module{{Slug: "a"}, {Slug: "b", TrustLevel: "verified"}}) {
		t.Error("tagged module should report trust data")
	}
}

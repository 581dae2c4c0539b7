package memory

import (
	"reflect"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Interest_In_Travel", "interest_in_travel"},
		{"Interest In Travel", "interest_in_travel"},
		{"  Favorite   Color ", "favorite_color"},
		{"pet_name", "pet_name"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeduplicate_KeepsHighestConfidence(t *testing.T) {
	records := []Record{
		{Category: "FACT", Key: "Interest_In_Travel", Value: "mentioned trip", Confidence: 0.6},
		{Category: "FACT", Key: "interest_in_travel", Value: "booked flights", Confidence: 0.9},
	}

	out := Deduplicate(records, 0)

	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", out[0].Confidence)
	}
	if out[0].Key != "interest_in_travel" {
		t.Errorf("Key = %q, want normalized form", out[0].Key)
	}
}

func TestDeduplicate_TieKeepsFirstSeen(t *testing.T) {
	records := []Record{
		{Category: "FACT", Key: "pet name", Value: "first", Confidence: 0.5},
		{Category: "FACT", Key: "Pet Name", Value: "second", Confidence: 0.5},
	}

	out := Deduplicate(records, 0)

	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Value != "first" {
		t.Errorf("Value = %q, want the first-seen record on a confidence tie", out[0].Value)
	}
}

func TestDeduplicate_PerCategoryCap(t *testing.T) {
	records := []Record{
		{Category: "FACT", Key: "a", Confidence: 0.3},
		{Category: "FACT", Key: "b", Confidence: 0.9},
		{Category: "FACT", Key: "c", Confidence: 0.6},
		{Category: "GOAL", Key: "d", Confidence: 0.5},
	}

	out := Deduplicate(records, 2)

	var fact, goal []Record
	for _, r := range out {
		switch r.Category {
		case "FACT":
			fact = append(fact, r)
		case "GOAL":
			goal = append(goal, r)
		}
	}
	if len(fact) != 2 {
		t.Fatalf("FACT count = %d, want 2", len(fact))
	}
	if fact[0].Key != "b" || fact[1].Key != "c" {
		t.Errorf("FACT keys = %q,%q, want b,c (confidence descending)", fact[0].Key, fact[1].Key)
	}
	if len(goal) != 1 {
		t.Errorf("GOAL count = %d, want 1", len(goal))
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	records := []Record{
		{Category: "FACT", Key: "Interest In Travel", Confidence: 0.6},
		{Category: "FACT", Key: "interest_in_travel", Confidence: 0.9},
		{Category: "FACT", Key: "hobby", Confidence: 0.9},
		{Category: "GOAL", Key: "Learn Guitar", Confidence: 0.4},
		{Category: "GOAL", Key: "learn   guitar", Confidence: 0.4},
	}

	once := Deduplicate(records, 2)
	twice := Deduplicate(once, 2)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("dedup not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestDeduplicate_UniqueKeysPerCategory(t *testing.T) {
	records := []Record{
		{Category: "FACT", Key: "Topic A", Confidence: 0.2},
		{Category: "FACT", Key: "topic a", Confidence: 0.4},
		{Category: "FACT", Key: "topic_a", Confidence: 0.3},
		{Category: "GOAL", Key: "topic a", Confidence: 0.8},
	}

	out := Deduplicate(records, 0)

	seen := make(map[string]bool)
	for _, r := range out {
		k := r.Category + "/" + r.Key
		if seen[k] {
			t.Errorf("duplicate key after dedup: %s", k)
		}
		seen[k] = true
	}
	// Same normalized key in a different category survives.
	if len(out) != 2 {
		t.Errorf("len = %d, want 2", len(out))
	}
}

func TestDeduplicate_Empty(t *testing.T) {
	if out := Deduplicate(nil, 3); len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}

func TestByCategory(t *testing.T) {
	records := []Record{
		{Category: "FACT", Key: "a"},
		{Category: "GOAL", Key: "b"},
		{Category: "FACT", Key: "c"},
	}
	grouped := ByCategory(records)
	if len(grouped["FACT"]) != 2 || len(grouped["GOAL"]) != 1 {
		t.Errorf("unexpected grouping: %+v", grouped)
	}
	if grouped["FACT"][0].Key != "a" || grouped["FACT"][1].Key != "c" {
		t.Errorf("input order not preserved within category")
	}
}

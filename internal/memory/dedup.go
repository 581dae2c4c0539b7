package memory

import (
	"sort"
	"strings"
)

// NormalizeKey lowercases a memory key and collapses internal whitespace
// runs to a single underscore, so "Interest In Travel" and
// "interest_in_travel" identify the same fact.
func NormalizeKey(key string) string {
	fields := strings.Fields(strings.ToLower(key))
	return strings.Join(fields, "_")
}

// Deduplicate collapses raw records to at most one per
// (category, normalized key), keeping the highest-confidence instance.
// Equal confidence keeps the first encountered. Each category is then
// capped to perCategory records (0 = uncapped), preserving
// confidence-descending order within the category.
//
// Pure and idempotent: running it on its own output yields the same
// output.
func Deduplicate(records []Record, perCategory int) []Record {
	type slot struct {
		rec   Record
		order int
	}

	best := make(map[string]*slot)
	var categories []string
	seenCategory := make(map[string]bool)

	for i, r := range records {
		if !seenCategory[r.Category] {
			seenCategory[r.Category] = true
			categories = append(categories, r.Category)
		}
		key := r.Category + "\x00" + NormalizeKey(r.Key)
		cur, ok := best[key]
		if !ok {
			norm := r
			norm.Key = NormalizeKey(r.Key)
			best[key] = &slot{rec: norm, order: i}
			continue
		}
		if r.Confidence > cur.rec.Confidence {
			norm := r
			norm.Key = NormalizeKey(r.Key)
			// Keep the original slot order so ties later in the pipeline
			// stay first-seen deterministic.
			cur.rec = norm
		}
	}

	byCategory := make(map[string][]*slot)
	for _, s := range best {
		byCategory[s.rec.Category] = append(byCategory[s.rec.Category], s)
	}

	var out []Record
	for _, cat := range categories {
		slots := byCategory[cat]
		sort.SliceStable(slots, func(i, j int) bool {
			if slots[i].rec.Confidence != slots[j].rec.Confidence {
				return slots[i].rec.Confidence > slots[j].rec.Confidence
			}
			return slots[i].order < slots[j].order
		})
		if perCategory > 0 && len(slots) > perCategory {
			slots = slots[:perCategory]
		}
		for _, s := range slots {
			out = append(out, s.rec)
		}
	}
	return out
}

// ByCategory groups records into a category-keyed map, preserving input
// order within each category.
func ByCategory(records []Record) map[string][]Record {
	out := make(map[string][]Record)
	for _, r := range records {
		out[r.Category] = append(out[r.Category], r)
	}
	return out
}

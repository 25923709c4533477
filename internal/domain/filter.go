package domain

import "strings"

// FilterAll is the sentinel that disables an enumerated filter.
const FilterAll = "all"

// matchesSearch reports whether any field contains the search term,
// case-insensitively. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}

	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}

// matchesEnum reports whether value equals want, case-insensitively.
// The "all" sentinel (or empty) disables the predicate.
func matchesEnum(want, value string) bool {
	if want == "" || strings.EqualFold(want, FilterAll) {
		return true
	}

	return strings.EqualFold(want, value)
}

// MovementQuery selects movements. Predicates are conjunctive.
type MovementQuery struct {
	Search string
	Type   string
	ItemID string
}

// FilterMovements returns the movements matching the query, preserving the
// input's relative order. The input is never mutated.
func FilterMovements(movements []*Movement, q MovementQuery) []*Movement {
	out := make([]*Movement, 0, len(movements))
	for _, m := range movements {
		if !matchesSearch(q.Search, m.ItemID, m.Reference, m.Location, m.Operator) {
			continue
		}
		if !matchesEnum(q.Type, string(m.Type)) {
			continue
		}
		if q.ItemID != "" && q.ItemID != m.ItemID {
			continue
		}
		out = append(out, m)
	}

	return out
}

// LevelQuery selects stock levels. Predicates are conjunctive.
type LevelQuery struct {
	Search   string
	Category string
	Status   string
}

// FilterLevels returns the stock levels matching the query, preserving the
// input's relative order.
func FilterLevels(levels []*StockLevel, q LevelQuery) []*StockLevel {
	out := make([]*StockLevel, 0, len(levels))
	for _, l := range levels {
		if !matchesSearch(q.Search, l.ItemID, l.Name, l.Supplier, l.Location) {
			continue
		}
		if !matchesEnum(q.Category, l.Category) {
			continue
		}
		if !matchesEnum(q.Status, string(l.Status)) {
			continue
		}
		out = append(out, l)
	}

	return out
}

package domain

import "testing"

func sampleMovements() []*Movement {
	return []*Movement{
		{ID: "m1", ItemID: "STL-001", Type: MovementIn, Reference: "PO-1001", Location: "A-01", Operator: "chen"},
		{ID: "m2", ItemID: "ALU-002", Type: MovementOut, Reference: "WO-2001", Location: "A-02", Operator: "ortiz"},
		{ID: "m3", ItemID: "STL-001", Type: MovementOut, Reference: "WO-2002", Location: "A-01", Operator: "chen"},
		{ID: "m4", ItemID: "BLT-003", Type: MovementReturn, Reference: "", Location: "B-01", Operator: "ortiz"},
	}
}

func movementIDs(movements []*Movement) []string {
	ids := make([]string, len(movements))
	for i, m := range movements {
		ids[i] = m.ID
	}
	return ids
}

func TestFilterMovements(t *testing.T) {
	tests := []struct {
		name  string
		query MovementQuery
		want  []string
	}{
		{name: "empty query matches all", query: MovementQuery{}, want: []string{"m1", "m2", "m3", "m4"}},
		{name: "all sentinel disables type filter", query: MovementQuery{Type: "all"}, want: []string{"m1", "m2", "m3", "m4"}},
		{name: "type exact match", query: MovementQuery{Type: "OUT"}, want: []string{"m2", "m3"}},
		{name: "type is case-insensitive", query: MovementQuery{Type: "out"}, want: []string{"m2", "m3"}},
		{name: "search matches item id substring", query: MovementQuery{Search: "stl"}, want: []string{"m1", "m3"}},
		{name: "search matches reference", query: MovementQuery{Search: "po-10"}, want: []string{"m1"}},
		{name: "search matches operator", query: MovementQuery{Search: "ORTIZ"}, want: []string{"m2", "m4"}},
		{name: "conjunctive predicates", query: MovementQuery{Search: "chen", Type: "OUT"}, want: []string{"m3"}},
		{name: "item filter", query: MovementQuery{ItemID: "STL-001"}, want: []string{"m1", "m3"}},
		{name: "no match", query: MovementQuery{Search: "titanium"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sampleMovements()
			got := movementIDs(FilterMovements(input, tt.query))

			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v (order must be preserved)", tt.want, got)
				}
			}

			// Input must not be mutated.
			if len(input) != 4 {
				t.Error("input collection was mutated")
			}
		})
	}
}

func TestFilterLevels(t *testing.T) {
	levels := []*StockLevel{
		{ItemID: "STL-001", Name: "Steel Sheet", Category: "Raw Material", Status: StatusHealthy, Supplier: "Acme"},
		{ItemID: "ALU-002", Name: "Aluminium Rod", Category: "Raw Material", Status: StatusLow, Supplier: "Metalco"},
		{ItemID: "BLT-003", Name: "Hex Bolt M8", Category: "Fastener", Status: StatusCritical, Supplier: "Acme"},
	}

	tests := []struct {
		name  string
		query LevelQuery
		want  int
	}{
		{name: "all", query: LevelQuery{Category: "all", Status: "all"}, want: 3},
		{name: "by category", query: LevelQuery{Category: "Fastener"}, want: 1},
		{name: "by status", query: LevelQuery{Status: "Low"}, want: 1},
		{name: "status case-insensitive", query: LevelQuery{Status: "critical"}, want: 1},
		{name: "search by supplier", query: LevelQuery{Search: "acme"}, want: 2},
		{name: "search plus status", query: LevelQuery{Search: "acme", Status: "Critical"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterLevels(levels, tt.query); len(got) != tt.want {
				t.Errorf("expected %d levels, got %d", tt.want, len(got))
			}
		})
	}
}

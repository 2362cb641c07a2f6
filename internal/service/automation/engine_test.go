package automation

import (
	"reflect"
	"testing"
)

func TestEvaluateInventoryPass(t *testing.T) {
	engine := New(nil, 0)
	kit := []StockDelta{
		{ItemID: ItemImplantPost, Quantity: 1},
		{ItemID: ItemAnesthetic, Quantity: 2},
		{ItemID: ItemGloves, Quantity: 2},
	}

	tests := []struct {
		name       string
		recordType string
		want       []StockDelta
	}{
		{"implant placement", "Implant Placement", kit},
		{"oral surgery", "Oral Surgery", kit},
		{"marker inside longer phrase", "Post-Implant Checkup", kit},
		{"routine checkup", "Routine Checkup", nil},
		{"root canal", "Root Canal", nil},
		{"lowercase implant does not match", "implant consult", nil},
		{"lowercase surgery does not match", "minor surgery", nil},
		{"empty type", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(tt.recordType).Inventory
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q).Inventory = %v, want %v", tt.recordType, got, tt.want)
			}
		})
	}
}

func TestEvaluateBillingPass(t *testing.T) {
	engine := New(nil, 0)

	tests := []struct {
		name       string
		recordType string
		wantAmount int64
		wantLabel  string
	}{
		{"implant", "Implant Placement", 12000, "Implant"},
		{"root canal", "Root Canal", 3500, "Root Canal"},
		{"crown", "Zirconia Crown Fitting", 4000, "Crown"},
		{"implant outranks crown", "Crown replacement after Implant failure", 12000, "Implant"},
		{"no match falls back", "Routine Checkup", 500, "General Treatment"},
		{"case sensitive", "implant placement", 500, "General Treatment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(tt.recordType).Invoice
			if got.Amount != tt.wantAmount || got.Label != tt.wantLabel {
				t.Errorf("Evaluate(%q).Invoice = {%d %q}, want {%d %q}",
					tt.recordType, got.Amount, got.Label, tt.wantAmount, tt.wantLabel)
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	engine := New(nil, 0)
	first := engine.Evaluate("Implant Surgery")
	for i := 0; i < 10; i++ {
		if got := engine.Evaluate("Implant Surgery"); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Evaluate returned %v, want %v", i, got, first)
		}
	}
}

func TestCustomRulesOrderWins(t *testing.T) {
	engine := New([]PriceRule{
		{Keyword: "Crown", Price: 100},
		{Keyword: "Implant", Price: 200},
	}, 50)

	got := engine.Evaluate("Implant with Crown").Invoice
	if got.Label != "Crown" || got.Amount != 100 {
		t.Errorf("first declared rule should win, got {%d %q}", got.Amount, got.Label)
	}

	got = engine.Evaluate("Cleaning").Invoice
	if got.Amount != 50 || got.Label != "General Treatment" {
		t.Errorf("fallback = {%d %q}, want {50 %q}", got.Amount, got.Label, "General Treatment")
	}
}

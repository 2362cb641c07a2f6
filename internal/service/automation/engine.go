// Package automation is the clinical automation engine: a pure,
// deterministic mapping from a medical record's visit type to the side
// effects the clinic expects (consumable deductions and a draft invoice).
// The engine only describes effects; the caller applies them, which keeps
// the rules independent of any presentation or storage concern.
package automation

import "strings"

// Consumable item ids the surgical kit rule deducts from. These are the
// seeded inventory ids shared by every session.
const (
	ItemImplantPost = "I003"
	ItemAnesthetic  = "I004"
	ItemGloves      = "I005"
)

// Substrings of the visit type that mark a surgical visit. Matching is
// case-sensitive on purpose: the rule mirrors how the clinic's form
// capitalizes procedure names, and "implant" in free prose must not
// deduct stock.
var surgicalMarkers = []string{"Implant", "Surgery"}

// StockDelta is one deduction the caller applies through the ledger.
type StockDelta struct {
	ItemID   string
	Quantity int
}

// InvoiceDraft describes the invoice to append: a single line at the
// matched price. The caller mints the id and fills patient and date.
type InvoiceDraft struct {
	Amount int64
	Label  string
}

// Effects is everything one record creation triggers.
type Effects struct {
	Inventory []StockDelta
	Invoice   InvoiceDraft
}

// PriceRule maps a keyword to a flat price. Rules are an ordered list:
// the first keyword that is a substring of the visit type wins, so
// "Crown replacement after Implant failure" bills as Implant.
type PriceRule struct {
	Keyword string
	Price   int64
}

// DefaultPriceRules returns the built-in pricing table in its declared
// precedence order: Implant before Root Canal before Crown.
func DefaultPriceRules() []PriceRule {
	return []PriceRule{
		{Keyword: "Implant", Price: 12000},
		{Keyword: "Root Canal", Price: 3500},
		{Keyword: "Crown", Price: 4000},
	}
}

// DefaultFlatPrice is billed when no keyword matches.
const DefaultFlatPrice = 500

type Engine struct {
	rules        []PriceRule
	defaultPrice int64
}

// New builds an engine with the given pricing table. Passing no rules
// installs the defaults.
func New(rules []PriceRule, defaultPrice int64) *Engine {
	if len(rules) == 0 {
		rules = DefaultPriceRules()
	}
	if defaultPrice <= 0 {
		defaultPrice = DefaultFlatPrice
	}
	return &Engine{
		rules:        append([]PriceRule(nil), rules...),
		defaultPrice: defaultPrice,
	}
}

// Evaluate runs both rule passes over a visit type. It is referentially
// transparent: the same input always yields the same effects.
func (e *Engine) Evaluate(recordType string) Effects {
	return Effects{
		Inventory: e.inventoryPass(recordType),
		Invoice:   e.billingPass(recordType),
	}
}

// SurgicalKit returns the fixed deduction list applied to surgical
// visits.
func (e *Engine) SurgicalKit() []StockDelta {
	return []StockDelta{
		{ItemID: ItemImplantPost, Quantity: 1},
		{ItemID: ItemAnesthetic, Quantity: 2},
		{ItemID: ItemGloves, Quantity: 2},
	}
}

// inventoryPass deducts the fixed surgical kit when the visit type names
// an implant or surgical procedure.
func (e *Engine) inventoryPass(recordType string) []StockDelta {
	if !containsAny(recordType, surgicalMarkers) {
		return nil
	}
	return e.SurgicalKit()
}

// billingPass picks the price of the first rule whose keyword appears in
// the visit type, falling back to the flat default.
func (e *Engine) billingPass(recordType string) InvoiceDraft {
	for _, r := range e.rules {
		if strings.Contains(recordType, r.Keyword) {
			return InvoiceDraft{Amount: r.Price, Label: r.Keyword}
		}
	}
	return InvoiceDraft{Amount: e.defaultPrice, Label: "General Treatment"}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

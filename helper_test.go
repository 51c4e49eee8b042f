package dineboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// dec is a helper for test to create a decimal from its string form
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// mustInventory builds an inventory from name, amount, cost triples.
func mustInventory(t *testing.T, items ...any) *Inventory {
	t.Helper()
	inv := NewInventory()
	for i := 0; i+2 < len(items); i += 3 {
		if err := inv.Add(items[i].(string), items[i+1].(string), EUR(items[i+2].(float64))); err != nil {
			t.Fatalf("Add(%v): %v", items[i], err)
		}
	}
	return inv
}

// mustRecipe builds a recipe from ingredient, amount pairs.
func mustRecipe(t *testing.T, pairs ...string) Recipe {
	t.Helper()
	r, err := NewRecipe(pairs...)
	if err != nil {
		t.Fatalf("NewRecipe(%q): %v", pairs, err)
	}
	return r
}

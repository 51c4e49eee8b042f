package dineboard

import (
	"errors"
	"testing"
)

func TestInventory_Add(t *testing.T) {
	inv := NewInventory()
	if err := inv.Add("Noodles", "20 kg", EUR(60)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	rec, err := inv.Get("noodles")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Name != "noodles" {
		t.Errorf("Name = %q, want lower-cased %q", rec.Name, "noodles")
	}
	if got := rec.PricePerUnit(); !got.Value().Equal(dec("3")) || rec.PriceUnit() != "kg" {
		t.Errorf("PricePerUnit = %v/%s, want 3/kg", got.Value(), rec.PriceUnit())
	}

	// Overwrite recomputes the price.
	if err := inv.Add("noodles", "10 kg", EUR(50)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	rec, _ = inv.Get("noodles")
	if got := rec.PricePerUnit(); !got.Value().Equal(dec("5")) {
		t.Errorf("PricePerUnit after overwrite = %v, want 5", got.Value())
	}
	if inv.Len() != 1 {
		t.Errorf("Len = %d, want 1", inv.Len())
	}
}

func TestInventory_AddInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		ingName string
		amount  string
		cost    Money
		wantErr error
	}{
		{name: "empty name", ingName: " ", amount: "1 kg", cost: EUR(1), wantErr: ErrInvalidIngredient},
		{name: "empty amount", ingName: "rice", amount: "", cost: EUR(1), wantErr: ErrInvalidIngredient},
		{name: "negative cost", ingName: "rice", amount: "1 kg", cost: EUR(-1), wantErr: ErrInvalidIngredient},
		{name: "malformed amount", ingName: "rice", amount: "a lot", cost: EUR(1), wantErr: ErrMalformedQuantity},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := mustInventory(t, "rice", "5 kg", 10.0)
			err := inv.Add(tc.ingName, tc.amount, tc.cost)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Add error = %v, want %v", err, tc.wantErr)
			}
			rec, _ := inv.Get("rice")
			if rec.Amount.String() != "5 kg" || !rec.TotalCost.Equal(EUR(10)) {
				t.Errorf("failed Add modified the inventory: %v %v", rec.Amount, rec.TotalCost.Value())
			}
		})
	}
}

func TestInventory_GetNotFound(t *testing.T) {
	inv := NewInventory()
	if _, err := inv.Get("saffron"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
	if _, _, err := inv.Deplete("saffron", Q(1, "g")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Deplete error = %v, want ErrNotFound", err)
	}
}

func TestInventory_Deplete(t *testing.T) {
	testCases := []struct {
		name          string
		take          string
		wantRemoved   string
		wantAmount    string
		wantOverdraft bool
	}{
		{name: "partial", take: "5 kg", wantRemoved: "5", wantAmount: "15"},
		{name: "nothing", take: "0 kg", wantRemoved: "0", wantAmount: "20"},
		{name: "exactly all", take: "20 kg", wantRemoved: "20", wantAmount: "0"},
		{name: "overdraft", take: "25 kg", wantRemoved: "20", wantAmount: "0", wantOverdraft: true},
		{name: "fractional", take: "0.2 kg", wantRemoved: "0.2", wantAmount: "19.8"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := mustInventory(t, "noodles", "20 kg", 60.0)
			removed, overdraft, err := inv.Deplete("noodles", MustParseQuantity(tc.take))
			if err != nil {
				t.Fatalf("Deplete: %v", err)
			}
			if !removed.Value().Equal(dec(tc.wantRemoved)) {
				t.Errorf("removed = %v, want %v", removed, tc.wantRemoved)
			}
			if overdraft != tc.wantOverdraft {
				t.Errorf("overdraft = %v, want %v", overdraft, tc.wantOverdraft)
			}
			rec, _ := inv.Get("noodles")
			if !rec.Amount.Value().Equal(dec(tc.wantAmount)) || rec.Amount.Unit() != "kg" {
				t.Errorf("amount = %v, want %v kg", rec.Amount, tc.wantAmount)
			}
			if rec.Amount.Value().IsNegative() {
				t.Errorf("amount went negative: %v", rec.Amount)
			}
			// The remaining stock is valued at the same unit price.
			if wantCost := dec(tc.wantAmount).Mul(dec("3")); !rec.TotalCost.Value().Equal(wantCost) {
				t.Errorf("total cost = %v, want %v", rec.TotalCost.Value(), wantCost)
			}
		})
	}
}

func TestInventory_DepleteIncompatible(t *testing.T) {
	inv := mustInventory(t, "noodles", "20 kg", 60.0)
	if _, _, err := inv.Deplete("noodles", MustParseQuantity("200 g")); !errors.Is(err, ErrIncompatibleUnits) {
		t.Fatalf("Deplete error = %v, want ErrIncompatibleUnits", err)
	}
	rec, _ := inv.Get("noodles")
	if rec.Amount.String() != "20 kg" {
		t.Errorf("failed Deplete changed the stock to %v", rec.Amount)
	}
}

func TestInventory_CloneIsIndependent(t *testing.T) {
	inv := mustInventory(t, "noodles", "20 kg", 60.0, "carrot", "50 units", 20.0)
	c := inv.Clone()
	if _, _, err := c.Deplete("noodles", Q(10, "kg")); err != nil {
		t.Fatalf("Deplete: %v", err)
	}
	c.Put(Ingredient{Name: "tofu", Amount: Q(1, "kg"), TotalCost: EUR(4)})

	rec, _ := inv.Get("noodles")
	if rec.Amount.String() != "20 kg" {
		t.Errorf("original changed to %v", rec.Amount)
	}
	if inv.Has("tofu") {
		t.Errorf("original gained an ingredient")
	}
	if got, want := c.Names(), []string{"noodles", "carrot", "tofu"}; len(got) != 3 || got[0] != want[0] || got[2] != want[2] {
		t.Errorf("Names = %q, want %q", got, want)
	}
}

func TestInventory_Value(t *testing.T) {
	inv := mustInventory(t, "noodles", "20 kg", 60.0, "carrot", "50 units", 20.0)
	if got := inv.Value("EUR"); !got.Equal(EUR(80)) {
		t.Errorf("Value = %v, want 80", got.Value())
	}
	if got := NewInventory().Value("EUR"); !got.IsZero() {
		t.Errorf("Value of an empty inventory = %v, want 0", got.Value())
	}
}

func TestIngredient_EmptyStockHasZeroPrice(t *testing.T) {
	rec := Ingredient{Name: "salt", Amount: Q(0, "kg"), TotalCost: EUR(0)}
	if !rec.PricePerUnit().IsZero() {
		t.Errorf("PricePerUnit = %v, want 0", rec.PricePerUnit().Value())
	}
}

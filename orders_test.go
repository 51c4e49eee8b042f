package dineboard

import (
	"errors"
	"testing"
)

func TestOrderBatch(t *testing.T) {
	b := NewOrderBatch()
	b.Add("Stir Fry Noodles", 2)
	b.Add("soup", 1)
	b.Add("stir fry noodles", 3)

	got := b.Orders()
	want := []Order{{"stir fry noodles", 5}, {"soup", 1}}
	if len(got) != len(want) {
		t.Fatalf("Orders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Orders[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len after Clear = %d", b.Len())
	}
}

func TestProcess(t *testing.T) {
	k := SampleKitchen("EUR")
	batch := NewOrderBatch(Order{"stir fry noodles", 10})

	updated, processed, warnings, err := Process(k.Menu, k.Stock, batch, k.Ingredients)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(processed) != 1 || processed[0] != (Order{"stir fry noodles", 10}) {
		t.Errorf("processed = %v", processed)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}

	wantStock := map[string]string{
		"noodles":     "18 kg",
		"chicken":     "9 kg",
		"carrot":      "40 units",
		"broccoli":    "9.5 kg",
		"bell pepper": "9.6 kg",
	}
	for name, want := range wantStock {
		rec, err := updated.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if eq, _ := rec.Amount.Equal(MustParseQuantity(want)); !eq {
			t.Errorf("%s = %v, want %v", name, rec.Amount, want)
		}
		// inputs are untouched
		before, _ := k.Stock.Get(name)
		if eq, _ := before.Amount.Equal(rec.Amount); eq {
			t.Errorf("%s: input stock was modified or not depleted: %v", name, before.Amount)
		}
	}
}

func TestProcess_DropsNonPositiveQuantities(t *testing.T) {
	k := SampleKitchen("EUR")
	batch := NewOrderBatch(Order{"stir fry noodles", 0})
	batch.Add("stir fry noodles", 0)

	updated, processed, warnings, err := Process(k.Menu, k.Stock, batch, k.Ingredients)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(processed) != 0 {
		t.Errorf("processed = %v, want none", processed)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	rec, _ := updated.Get("noodles")
	if rec.Amount.String() != "20 kg" {
		t.Errorf("noodles = %v, want 20 kg", rec.Amount)
	}

	neg := NewOrderBatch(Order{"stir fry noodles", -2}, Order{"stir fry noodles", 1})
	_, processed, _, err = Process(k.Menu, k.Stock, neg, k.Ingredients)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	// -2 + 1 accumulates to -1: dropped
	if len(processed) != 0 {
		t.Errorf("processed = %v, want none", processed)
	}
}

func TestProcess_KeepsBatchOrder(t *testing.T) {
	k := SampleKitchen("EUR")
	if err := k.AddDish("chicken salad", mustRecipe(t, "chicken", "0.2 kg", "carrot", "2 units")); err != nil {
		t.Fatal(err)
	}
	batch := NewOrderBatch(Order{"chicken salad", 1}, Order{"stir fry noodles", 0}, Order{"stir fry noodles", 2})

	_, processed, _, err := Process(k.Menu, k.Stock, batch, k.Ingredients)
	if err != nil {
		t.Fatal(err)
	}
	want := []Order{{"chicken salad", 1}, {"stir fry noodles", 2}}
	if len(processed) != 2 || processed[0] != want[0] || processed[1] != want[1] {
		t.Errorf("processed = %v, want %v", processed, want)
	}
}

func TestProcess_LowStockBoundary(t *testing.T) {
	testCases := []struct {
		name     string
		servings int
		wantLow  bool
	}{
		{name: "above threshold", servings: 15, wantLow: false}, // 5/20 = 25%
		{name: "exactly threshold", servings: 16, wantLow: true}, // 4/20 = 20%
		{name: "below threshold", servings: 17, wantLow: true},  // 3/20 = 15%
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			menu := NewMenu()
			stock := mustInventory(t, "noodles", "20 kg", 60.0)
			if err := menu.Add("noodles", mustRecipe(t, "noodles", "1 kg")); err != nil {
				t.Fatal(err)
			}
			_, _, warnings, err := Process(menu, stock, NewOrderBatch(Order{"noodles", tc.servings}), stock)
			if err != nil {
				t.Fatal(err)
			}
			gotLow := len(warnings) == 1 && warnings[0].Kind == LowStockWarning && warnings[0].Ingredient == "noodles"
			if gotLow != tc.wantLow {
				t.Errorf("warnings = %v, want low stock: %v", warnings, tc.wantLow)
			}
			if tc.servings == 16 && gotLow && !warnings[0].Level.Equal(20) {
				t.Errorf("Level = %v, want 20%%", warnings[0].Level)
			}
		})
	}
}

func TestProcess_Overdraft(t *testing.T) {
	menu := NewMenu()
	stock := mustInventory(t, "noodles", "1 kg", 3.0, "carrot", "10 units", 4.0)
	if err := menu.Add("noodles", mustRecipe(t, "noodles", "0.4 kg", "carrot", "1 units")); err != nil {
		t.Fatal(err)
	}

	updated, processed, warnings, err := Process(menu, stock, NewOrderBatch(Order{"noodles", 3}), stock)
	if err != nil {
		t.Fatalf("Process must not fail on overdraft: %v", err)
	}
	if len(processed) != 1 {
		t.Errorf("processed = %v", processed)
	}
	rec, _ := updated.Get("noodles")
	if !rec.Amount.IsZero() {
		t.Errorf("noodles = %v, want 0 kg", rec.Amount)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want an overdraft then a low stock", warnings)
	}
	if w := warnings[0]; w.Kind != OverdraftWarning || w.Ingredient != "noodles" || w.Missing.String() != "0.2 kg" {
		t.Errorf("warnings[0] = %+v, want noodles overdraft of 0.2 kg", w)
	}
	if w := warnings[1]; w.Kind != LowStockWarning || w.Ingredient != "noodles" || !w.Level.Equal(0) {
		t.Errorf("warnings[1] = %+v, want noodles at 0%%", w)
	}
}

func TestProcess_Errors(t *testing.T) {
	k := SampleKitchen("EUR")
	if err := k.AddDish("soup", mustRecipe(t, "noodles", "200 g")); err != nil {
		t.Fatal(err)
	}
	if err := k.AddDish("tofu bowl", mustRecipe(t, "tofu", "0.1 kg")); err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		name    string
		orders  []Order
		wantErr error
	}{
		{name: "unknown dish", orders: []Order{{"stir fry noodles", 1}, {"pad thai", 1}}, wantErr: ErrNotFound},
		{name: "unknown ingredient", orders: []Order{{"tofu bowl", 1}}, wantErr: ErrNotFound},
		{name: "incompatible units", orders: []Order{{"stir fry noodles", 1}, {"soup", 1}}, wantErr: ErrIncompatibleUnits},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := Process(k.Menu, k.Stock, NewOrderBatch(tc.orders...), k.Ingredients)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Process error = %v, want %v", err, tc.wantErr)
			}
			rec, _ := k.Stock.Get("noodles")
			if rec.Amount.String() != "20 kg" {
				t.Errorf("aborted batch changed the stock: %v", rec.Amount)
			}
		})
	}
}

func TestLowStock_SkipsUnknownAndEmptyBaseline(t *testing.T) {
	current := mustInventory(t, "noodles", "0 kg", 0.0, "salt", "0 kg", 0.0, "tofu", "0.1 kg", 1.0)
	original := mustInventory(t, "noodles", "10 kg", 30.0, "salt", "0 kg", 0.0)
	warnings := LowStock(current, original)
	if len(warnings) != 1 || warnings[0].Ingredient != "noodles" {
		t.Errorf("warnings = %v, want only noodles", warnings)
	}
}

package dineboard

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Ingredient is a stock record: how much of it is in stock and what that stock cost.
type Ingredient struct {
	Name      string
	Amount    Quantity
	TotalCost Money
}

// PricePerUnit returns the cost of one unit of the ingredient.
//
// It is always derived from Amount and TotalCost, an empty stock has a zero price.
func (i Ingredient) PricePerUnit() Money {
	if i.Amount.value.IsZero() {
		return M(0, i.TotalCost.cur)
	}
	return i.TotalCost.Div(i.Amount.value)
}

// PriceUnit returns the unit label the price per unit refers to.
func (i Ingredient) PriceUnit() string { return i.Amount.unit }

// Inventory maps ingredient names to their stock record.
//
// Names are lower-cased. The iteration order is the order in which
// ingredients were first added.
type Inventory struct {
	names   []string
	records map[string]Ingredient
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{records: make(map[string]Ingredient)}
}

func normalizeName(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Add inserts or overwrites an ingredient. The amount is parsed from text
// like "20 kg" and the total cost is what the whole amount cost.
//
// Nothing is changed if validation fails.
func (inv *Inventory) Add(name, amount string, totalCost Money) error {
	name = normalizeName(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidIngredient)
	}
	if strings.TrimSpace(amount) == "" {
		return fmt.Errorf("%w: %q has no amount", ErrInvalidIngredient, name)
	}
	if totalCost.IsNegative() {
		return fmt.Errorf("%w: %q has a negative cost %s", ErrInvalidIngredient, name, totalCost.Plain())
	}
	q, err := ParseQuantity(amount)
	if err != nil {
		return fmt.Errorf("ingredient %q: %w", name, err)
	}
	inv.Put(Ingredient{Name: name, Amount: q, TotalCost: totalCost})
	return nil
}

// Put stores an already validated record.
func (inv *Inventory) Put(rec Ingredient) {
	rec.Name = normalizeName(rec.Name)
	if _, exists := inv.records[rec.Name]; !exists {
		inv.names = append(inv.names, rec.Name)
	}
	inv.records[rec.Name] = rec
}

// Get returns the ingredient named name.
func (inv *Inventory) Get(name string) (Ingredient, error) {
	rec, ok := inv.records[normalizeName(name)]
	if !ok {
		return Ingredient{}, fmt.Errorf("ingredient %q: %w", name, ErrNotFound)
	}
	return rec, nil
}

// Has reports whether the ingredient exists.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.records[normalizeName(name)]
	return ok
}

// Deplete removes q from the stock of an ingredient.
//
// The stock never goes negative: at most the available amount is removed and
// overdraft reports that more was requested than available. The remaining
// stock keeps its unit price.
func (inv *Inventory) Deplete(name string, q Quantity) (removed Quantity, overdraft bool, err error) {
	rec, err := inv.Get(name)
	if err != nil {
		return Quantity{}, false, err
	}
	if err := rec.Amount.check(q); err != nil {
		return Quantity{}, false, fmt.Errorf("deplete %q: %w", rec.Name, err)
	}
	price := rec.PricePerUnit()

	removed = q
	if q.value.GreaterThan(rec.Amount.value) {
		removed, overdraft = rec.Amount, true
	}
	rec.Amount = Quantity{value: rec.Amount.value.Sub(removed.value), unit: rec.Amount.unit}
	rec.TotalCost = price.Mul(rec.Amount.value)
	inv.records[rec.Name] = rec
	return removed, overdraft, nil
}

// Names returns the ingredient names in insertion order.
func (inv *Inventory) Names() []string { return slices.Clone(inv.names) }

// Len returns the number of ingredients.
func (inv *Inventory) Len() int { return len(inv.names) }

// All iterates over the ingredients in insertion order.
func (inv *Inventory) All() iter.Seq[Ingredient] {
	return func(yield func(Ingredient) bool) {
		for _, name := range inv.names {
			if !yield(inv.records[name]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the inventory.
func (inv *Inventory) Clone() *Inventory {
	c := &Inventory{
		names:   slices.Clone(inv.names),
		records: make(map[string]Ingredient, len(inv.records)),
	}
	for k, v := range inv.records {
		c.records[k] = v
	}
	return c
}

// Value returns the total cost of everything in stock.
func (inv *Inventory) Value(currency string) Money {
	total := M(decimal.Zero, currency)
	for rec := range inv.All() {
		total = total.Add(rec.TotalCost)
	}
	return total
}

package dineboard

import (
	"fmt"
	"log"
	"slices"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level, relative to the original stock, at or
// below which an ingredient is reported as low.
const LowStockThreshold = 0.2

// Order is a number of servings of a dish.
type Order struct {
	Dish     string `json:"dish"`
	Quantity int    `json:"quantity"`
}

// OrderBatch collects the orders of a day before they are processed.
// Orders keep the order in which dishes were first added.
type OrderBatch struct {
	orders []Order
}

// NewOrderBatch creates a batch from orders, merging repeated dishes.
func NewOrderBatch(orders ...Order) *OrderBatch {
	b := &OrderBatch{}
	for _, o := range orders {
		b.Add(o.Dish, o.Quantity)
	}
	return b
}

// Add adds servings of a dish. Adding a dish twice accumulates its quantity.
func (b *OrderBatch) Add(dish string, quantity int) {
	dish = normalizeName(dish)
	i := slices.IndexFunc(b.orders, func(o Order) bool { return o.Dish == dish })
	if i >= 0 {
		b.orders[i].Quantity += quantity
		return
	}
	b.orders = append(b.orders, Order{Dish: dish, Quantity: quantity})
}

// Orders returns the orders of the batch.
func (b *OrderBatch) Orders() []Order { return slices.Clone(b.orders) }

// Len returns the number of distinct dishes in the batch.
func (b *OrderBatch) Len() int { return len(b.orders) }

// Clear empties the batch.
func (b *OrderBatch) Clear() { b.orders = b.orders[:0] }

// WarningKind tells what a Warning is about.
type WarningKind int

const (
	// LowStockWarning means the stock is at or below LowStockThreshold of the original stock.
	LowStockWarning WarningKind = iota
	// OverdraftWarning means the orders needed more than was in stock.
	OverdraftWarning
)

func (k WarningKind) String() string {
	switch k {
	case LowStockWarning:
		return "low stock"
	case OverdraftWarning:
		return "overdraft"
	default:
		return "unknown"
	}
}

// Warning reports a stock problem found while processing orders.
type Warning struct {
	Kind       WarningKind
	Ingredient string
	Level      Percent  // remaining stock relative to the original stock
	Remaining  Quantity // stock left after processing
	Missing    Quantity // for overdrafts, the quantity that could not be taken
}

func (w Warning) String() string {
	switch w.Kind {
	case OverdraftWarning:
		return fmt.Sprintf("%s: not enough stock, %s missing", w.Ingredient, w.Missing)
	default:
		return fmt.Sprintf("%s: stock at %s (%s left), reorder required", w.Ingredient, w.Level, w.Remaining)
	}
}

// Process applies a batch of orders to a stock snapshot.
//
// current is the stock before the batch, original the baseline used to detect
// low stock. Neither is modified: the updated stock is returned as a new
// inventory, together with the orders actually applied and the warnings.
//
// Orders with a quantity of zero or less are dropped. Running out of stock is
// not an error, it floors the stock at zero and yields an OverdraftWarning.
// Unknown dishes or ingredients and incompatible units abort the whole batch.
func Process(menu *Menu, current *Inventory, batch *OrderBatch, original *Inventory) (*Inventory, []Order, []Warning, error) {
	updated := current.Clone()
	var processed []Order
	var warnings []Warning

	for _, order := range batch.Orders() {
		if order.Quantity <= 0 {
			log.Printf("dropping order of %d %q", order.Quantity, order.Dish)
			continue
		}
		recipe, err := menu.Get(order.Dish)
		if err != nil {
			return nil, nil, nil, err
		}
		servings := decimal.NewFromInt(int64(order.Quantity))
		for _, line := range recipe {
			need := line.Amount.Mul(servings)
			removed, overdraft, err := updated.Deplete(line.Ingredient, need)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("order of %q: %w", order.Dish, err)
			}
			if overdraft {
				missing, _ := need.Sub(removed)
				rec, _ := updated.Get(line.Ingredient)
				warnings = append(warnings, Warning{
					Kind:       OverdraftWarning,
					Ingredient: rec.Name,
					Remaining:  rec.Amount,
					Missing:    missing,
				})
			}
		}
		processed = append(processed, order)
	}

	warnings = append(warnings, LowStock(updated, original)...)
	return updated, processed, warnings, nil
}

// LowStock returns a LowStockWarning for every ingredient of current whose
// amount is at or below LowStockThreshold of its amount in original.
//
// Ingredients missing from original, with an empty original stock, or whose
// units changed are skipped.
func LowStock(current, original *Inventory) []Warning {
	threshold := decimal.NewFromFloat(LowStockThreshold)
	var warnings []Warning
	for rec := range current.All() {
		base, err := original.Get(rec.Name)
		if err != nil || base.Amount.IsZero() || !base.Amount.Compatible(rec.Amount) {
			continue
		}
		ratio := rec.Amount.value.Div(base.Amount.value)
		if ratio.GreaterThan(threshold) {
			continue
		}
		warnings = append(warnings, Warning{
			Kind:       LowStockWarning,
			Ingredient: rec.Name,
			Level:      Percent(ratio.Shift(2).InexactFloat64()),
			Remaining:  rec.Amount,
		})
	}
	return warnings
}

package renderer

import (
	"strings"

	"github.com/guiluca/dineboard"
	"github.com/shopspring/decimal"
)

// Dashboard is the overview of a kitchen: key metrics, stock alerts, the
// inventory and the cost of every dish.
type Dashboard struct {
	// InventoryValue is the value of the current stock.
	InventoryValue dineboard.Money `json:"inventoryValue"`
	// IngredientCount is the number of ingredients in stock.
	IngredientCount int `json:"ingredientCount"`
	// DishCount is the number of dishes on the menu.
	DishCount int `json:"dishCount"`
	// PendingCount is the number of servings waiting to be processed.
	PendingCount int `json:"pendingCount"`
	// PendingCost is what the pending orders will cost.
	PendingCost dineboard.Money `json:"pendingCost"`
	// Alerts lists the ingredients running low.
	Alerts []dineboard.Warning `json:"alerts"`
	Stock  []StockLine         `json:"stock"`
	Menu   []MenuLine          `json:"menu"`
}

// StockLine is one ingredient of the inventory.
type StockLine struct {
	Name         string             `json:"name"`
	Amount       dineboard.Quantity `json:"amount"`
	Level        dineboard.Percent  `json:"level"`
	TotalCost    dineboard.Money    `json:"totalCost"`
	PricePerUnit dineboard.Money    `json:"pricePerUnit"`
	Unit         string             `json:"unit"`
}

// MenuLine is one dish of the menu with its serving cost.
type MenuLine struct {
	Dish   string          `json:"dish"`
	Cost   dineboard.Money `json:"cost"`
	Recipe string          `json:"recipe"`
	Error  string          `json:"error,omitempty"`
}

// NewDashboard creates a new Dashboard struct from a kitchen.
func NewDashboard(k *dineboard.Kitchen) *Dashboard {
	d := &Dashboard{
		InventoryValue:  k.Stock.Value(k.Currency),
		IngredientCount: k.Stock.Len(),
		DishCount:       k.Menu.Len(),
		PendingCost:     dineboard.M(0, k.Currency),
		Alerts:          k.LowStock(),
	}

	for rec := range k.Stock.All() {
		line := StockLine{
			Name:         rec.Name,
			Amount:       rec.Amount,
			Level:        100,
			TotalCost:    rec.TotalCost,
			PricePerUnit: rec.PricePerUnit(),
			Unit:         rec.PriceUnit(),
		}
		if base, err := k.Ingredients.Get(rec.Name); err == nil && base.Amount.Compatible(rec.Amount) && !base.Amount.IsZero() {
			line.Level = dineboard.Percent(rec.Amount.Value().Div(base.Amount.Value()).Shift(2).InexactFloat64())
		}
		d.Stock = append(d.Stock, line)
	}

	for _, c := range k.MenuCosts() {
		line := MenuLine{Dish: c.Dish, Cost: c.Cost, Recipe: RecipeString(c.Recipe)}
		if c.Err != nil {
			line.Error = c.Err.Error()
		}
		d.Menu = append(d.Menu, line)
	}

	for _, o := range k.Pending.Orders() {
		d.PendingCount += o.Quantity
		if cost, err := k.CostPerServing(o.Dish); err == nil {
			d.PendingCost = d.PendingCost.Add(cost.Mul(decimal.NewFromInt(int64(o.Quantity))))
		}
	}
	return d
}

// RecipeString lists the ingredients of a recipe, e.g. "noodles 0.2 kg, chicken 0.1 kg".
func RecipeString(r dineboard.Recipe) string {
	parts := make([]string, 0, len(r))
	for _, line := range r {
		parts = append(parts, line.Ingredient+" "+line.Amount.String())
	}
	return strings.Join(parts, ", ")
}

package dineboard

import "fmt"

// Coster gives the cost of one serving of a dish.
type Coster interface {
	CostPerServing(dish string) (Money, error)
}

// CostPerServing computes the cost of one serving of a dish from its recipe
// and the unit prices found in prices.
//
// The computation is all or nothing: a missing ingredient or a recipe unit
// that differs from the ingredient's price unit fails the whole dish.
func CostPerServing(menu *Menu, prices *Inventory, dish string) (Money, error) {
	recipe, err := menu.Get(dish)
	if err != nil {
		return Money{}, err
	}
	var total Money
	for _, line := range recipe {
		ing, err := prices.Get(line.Ingredient)
		if err != nil {
			return Money{}, fmt.Errorf("cost of %q: %w", dish, err)
		}
		if line.Amount.unit != ing.PriceUnit() {
			return Money{}, fmt.Errorf("cost of %q: %w: recipe uses %q of %q, priced per %q",
				dish, ErrUnitMismatch, line.Amount.unit, ing.Name, ing.PriceUnit())
		}
		total = total.Add(ing.PricePerUnit().MulQuantity(line.Amount))
	}
	return total, nil
}

// DishCost is the cost of one serving of a dish, or why it could not be computed.
type DishCost struct {
	Dish   string
	Recipe Recipe
	Cost   Money
	Err    error
}

// MenuCosts computes the serving cost of every dish of the menu, in menu order.
// Dishes that cannot be costed are reported with their error instead of failing the lot.
func MenuCosts(menu *Menu, prices *Inventory) []DishCost {
	costs := make([]DishCost, 0, menu.Len())
	for _, name := range menu.Names() {
		recipe, _ := menu.Get(name)
		cost, err := CostPerServing(menu, prices, name)
		costs = append(costs, DishCost{Dish: name, Recipe: recipe, Cost: cost, Err: err})
	}
	return costs
}

package dineboard

import (
	"fmt"
	"slices"
	"strings"
)

// RecipeLine is the quantity of one ingredient needed for a single serving.
type RecipeLine struct {
	Ingredient string   `json:"ingredient"`
	Amount     Quantity `json:"amount"`
}

// Recipe lists the ingredients of one serving of a dish, in the order they were given.
type Recipe []RecipeLine

// NewRecipe builds a recipe from alternating ingredient names and text amounts:
//
//	NewRecipe("noodles", "0.2 kg", "carrot", "1 units")
func NewRecipe(pairs ...string) (Recipe, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: ingredient %q has no amount", ErrInvalidDish, pairs[len(pairs)-1])
	}
	var r Recipe
	for i := 0; i < len(pairs); i += 2 {
		q, err := ParseQuantity(pairs[i+1])
		if err != nil {
			return nil, fmt.Errorf("recipe ingredient %q: %w", pairs[i], err)
		}
		r = r.With(pairs[i], q)
	}
	return r, nil
}

// With returns the recipe with the ingredient set to q. An ingredient that is
// already listed keeps its position.
func (r Recipe) With(ingredient string, q Quantity) Recipe {
	ingredient = normalizeName(ingredient)
	r = slices.Clone(r)
	if i := r.index(ingredient); i >= 0 {
		r[i].Amount = q
		return r
	}
	return append(r, RecipeLine{Ingredient: ingredient, Amount: q})
}

func (r Recipe) index(ingredient string) int {
	return slices.IndexFunc(r, func(l RecipeLine) bool { return l.Ingredient == ingredient })
}

// Amount returns the per serving amount of an ingredient.
func (r Recipe) Amount(ingredient string) (Quantity, bool) {
	i := r.index(normalizeName(ingredient))
	if i < 0 {
		return Quantity{}, false
	}
	return r[i].Amount, true
}

// Menu maps dish names to their recipe.
type Menu struct {
	names   []string
	recipes map[string]Recipe
}

// NewMenu creates an empty menu.
func NewMenu() *Menu {
	return &Menu{recipes: make(map[string]Recipe)}
}

// Add stores the recipe of a dish, replacing any previous one.
//
// Ingredient names are normalized like in Recipe.With. Ingredients are not
// checked here: a dish can be registered before its ingredients, it just
// cannot be costed until they are.
func (m *Menu) Add(name string, recipe Recipe) error {
	name = normalizeName(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDish)
	}
	if len(recipe) == 0 {
		return fmt.Errorf("%w: %q has no ingredients", ErrInvalidDish, name)
	}
	var stored Recipe
	for _, l := range recipe {
		if strings.TrimSpace(l.Ingredient) == "" {
			return fmt.Errorf("%w: %q has an unnamed ingredient", ErrInvalidDish, name)
		}
		stored = stored.With(l.Ingredient, l.Amount)
	}
	if _, exists := m.recipes[name]; !exists {
		m.names = append(m.names, name)
	}
	m.recipes[name] = stored
	return nil
}

// Get returns the recipe of a dish.
func (m *Menu) Get(name string) (Recipe, error) {
	r, ok := m.recipes[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("dish %q: %w", name, ErrNotFound)
	}
	return slices.Clone(r), nil
}

// Names returns the dish names in insertion order.
func (m *Menu) Names() []string { return slices.Clone(m.names) }

// Len returns the number of dishes.
func (m *Menu) Len() int { return len(m.names) }

// Clone returns an independent copy of the menu.
func (m *Menu) Clone() *Menu {
	c := &Menu{names: slices.Clone(m.names), recipes: make(map[string]Recipe, len(m.recipes))}
	for k, v := range m.recipes {
		c.recipes[k] = slices.Clone(v)
	}
	return c
}

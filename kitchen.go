package dineboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/guiluca/dineboard/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultKitchenFile is the name of the kitchen file when none is configured.
const DefaultKitchenFile = "kitchen.json"

// Kitchen is the working state of a restaurant between two runs.
//
// Ingredients is the registry of ingredients as they were bought: it prices
// dishes and is the baseline for low stock detection. Stock is what is left
// after the orders processed so far. Pending holds the orders of the day that
// have not been processed yet.
type Kitchen struct {
	Currency    string
	Ingredients *Inventory
	Stock       *Inventory
	Menu        *Menu
	Pending     *OrderBatch
}

// NewKitchen creates an empty kitchen working in currency.
func NewKitchen(currency string) *Kitchen {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Kitchen{
		Currency:    currency,
		Ingredients: NewInventory(),
		Stock:       NewInventory(),
		Menu:        NewMenu(),
		Pending:     NewOrderBatch(),
	}
}

// AddIngredient registers an ingredient, or restocks it, with totalCost the
// price paid for the whole amount. The current stock is set to that amount.
func (k *Kitchen) AddIngredient(name, amount string, totalCost decimal.Decimal) error {
	if err := k.Ingredients.Add(name, amount, M(totalCost, k.Currency)); err != nil {
		return err
	}
	rec, _ := k.Ingredients.Get(name)
	k.Stock.Put(rec)
	return nil
}

// AddDish registers the recipe of a dish.
func (k *Kitchen) AddDish(name string, recipe Recipe) error { return k.Menu.Add(name, recipe) }

// CostPerServing prices one serving of a dish with the registered ingredients.
func (k *Kitchen) CostPerServing(dish string) (Money, error) {
	cost, err := CostPerServing(k.Menu, k.Ingredients, dish)
	if err != nil {
		return Money{}, err
	}
	return cost.InCurrency(k.Currency), nil
}

// MenuCosts prices every dish of the menu.
func (k *Kitchen) MenuCosts() []DishCost { return MenuCosts(k.Menu, k.Ingredients) }

// Order adds servings of a known dish to the pending orders.
func (k *Kitchen) Order(dish string, quantity int) error {
	if _, err := k.Menu.Get(dish); err != nil {
		return err
	}
	k.Pending.Add(dish, quantity)
	return nil
}

// LowStock returns the ingredients whose stock is low compared to the registry.
func (k *Kitchen) LowStock() []Warning { return LowStock(k.Stock, k.Ingredients) }

// ProcessDay processes the pending orders as the orders of day on and appends
// them to the ledger. The stock and pending orders are only updated once the
// ledger has been written.
func (k *Kitchen) ProcessDay(ledger *LedgerFile, on date.Date) (Summary, []Warning, error) {
	updated, processed, warnings, err := Process(k.Menu, k.Stock, k.Pending, k.Ingredients)
	if err != nil {
		return Summary{}, nil, err
	}
	if len(processed) == 0 {
		return Summary{}, nil, fmt.Errorf("process %v: %w", on, ErrNoOrders)
	}
	summary, err := ledger.AppendDay(on, processed, k)
	if err != nil {
		return Summary{}, nil, err
	}
	k.Stock = updated
	k.Pending.Clear()
	return summary, warnings, nil
}

type ingredientJSON struct {
	Name         string          `json:"name"`
	Amount       Quantity        `json:"amount"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	PriceUnit    string          `json:"priceUnit"`
}

type dishJSON struct {
	Name   string `json:"name"`
	Recipe Recipe `json:"recipe"`
}

type kitchenJSON struct {
	Currency    string           `json:"currency"`
	Ingredients []ingredientJSON `json:"ingredients"`
	Stock       []ingredientJSON `json:"stock"`
	Dishes      []dishJSON       `json:"dishes"`
	Orders      []Order          `json:"orders"`
}

func inventoryJSON(inv *Inventory) []ingredientJSON {
	out := make([]ingredientJSON, 0, inv.Len())
	for rec := range inv.All() {
		out = append(out, ingredientJSON{
			Name:         rec.Name,
			Amount:       rec.Amount,
			TotalCost:    rec.TotalCost.value,
			PricePerUnit: rec.PricePerUnit().value,
			PriceUnit:    rec.PriceUnit(),
		})
	}
	return out
}

func (k *Kitchen) MarshalJSON() ([]byte, error) {
	doc := kitchenJSON{
		Currency:    k.Currency,
		Ingredients: inventoryJSON(k.Ingredients),
		Stock:       inventoryJSON(k.Stock),
		Dishes:      make([]dishJSON, 0, k.Menu.Len()),
		Orders:      k.Pending.Orders(),
	}
	for _, name := range k.Menu.Names() {
		recipe, _ := k.Menu.Get(name)
		doc.Dishes = append(doc.Dishes, dishJSON{Name: name, Recipe: recipe})
	}
	if doc.Orders == nil {
		doc.Orders = []Order{}
	}
	return json.Marshal(doc)
}

func (k *Kitchen) UnmarshalJSON(data []byte) error {
	var doc kitchenJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	decoded := NewKitchen(doc.Currency)
	var errs error
	load := func(inv *Inventory, recs []ingredientJSON) {
		for _, r := range recs {
			if err := inv.Add(r.Name, r.Amount.String(), M(r.TotalCost, decoded.Currency)); err != nil {
				errs = errors.Join(errs, err)
			}
		}
	}
	load(decoded.Ingredients, doc.Ingredients)
	load(decoded.Stock, doc.Stock)
	for _, d := range doc.Dishes {
		if err := decoded.Menu.Add(d.Name, d.Recipe); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	for _, o := range doc.Orders {
		decoded.Pending.Add(o.Dish, o.Quantity)
	}
	if errs != nil {
		return errs
	}
	*k = *decoded
	return nil
}

// EncodeKitchen writes the kitchen as indented JSON.
func EncodeKitchen(w io.Writer, k *Kitchen) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(k)
}

// DecodeKitchen reads a kitchen written by EncodeKitchen.
func DecodeKitchen(r io.Reader) (*Kitchen, error) {
	k := new(Kitchen)
	if err := json.NewDecoder(r).Decode(k); err != nil {
		return nil, fmt.Errorf("could not decode kitchen: %w", err)
	}
	return k, nil
}

// LoadKitchen reads the kitchen file at path. The error wraps fs.ErrNotExist
// when there is no such file.
func LoadKitchen(path string) (*Kitchen, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open kitchen file %q: %w", path, err)
	}
	defer f.Close()
	k, err := DecodeKitchen(f)
	if err != nil {
		return nil, fmt.Errorf("kitchen file %q: %w", path, err)
	}
	return k, nil
}

// SaveKitchen writes the kitchen file at path, creating its directory if needed.
func SaveKitchen(path string, k *Kitchen) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for kitchen %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening kitchen file %q for writing: %w", path, err)
	}
	defer f.Close()
	if err := EncodeKitchen(f, k); err != nil {
		return fmt.Errorf("error writing kitchen file %q: %w", path, err)
	}
	log.Printf("saved kitchen to %s", path)
	return nil
}

// SampleKitchen returns a kitchen stocked with a few ingredients and one dish.
// Recipe amounts use the same units as the stock so that the dish can be costed.
func SampleKitchen(currency string) *Kitchen {
	k := NewKitchen(currency)
	for _, ing := range []struct {
		name, amount string
		cost         float64
	}{
		{"noodles", "20 kg", 60.0},
		{"chicken", "10 kg", 90.0},
		{"carrot", "50 units", 20.0},
		{"broccoli", "10 kg", 30.0},
		{"bell pepper", "10 kg", 40.0},
	} {
		if err := k.AddIngredient(ing.name, ing.amount, decimal.NewFromFloat(ing.cost)); err != nil {
			panic(err)
		}
	}
	recipe, err := NewRecipe(
		"noodles", "0.2 kg",
		"chicken", "0.1 kg",
		"carrot", "1 units",
		"broccoli", "0.05 kg",
		"bell pepper", "0.04 kg",
	)
	if err != nil {
		panic(err)
	}
	if err := k.AddDish("stir fry noodles", recipe); err != nil {
		panic(err)
	}
	return k
}

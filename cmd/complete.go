package cmd

import (
	"github.com/guiluca/dineboard"
	"github.com/guiluca/dineboard/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete serves shell completion requests for the command name, and exits
// when it did. It is a no-op outside of a completion request.
//
// Install it in bash with `COMP_INSTALL=1 dine`.
func Complete(name string) {
	dishes := complete.PredictFunc(func(prefix string) []string { return kitchenNames(false) })
	ingredients := complete.PredictFunc(func(prefix string) []string { return kitchenNames(true) })
	topics := complete.PredictFunc(func(prefix string) []string {
		t, _ := docs.GetAllTopics()
		return append(t, "*")
	})
	none := map[string]complete.Predictor{}

	cmd := &complete.Command{
		Sub: map[string]*complete.Command{
			"init":           {Flags: map[string]complete.Predictor{"sample": predict.Nothing, "f": predict.Nothing}},
			"add-ingredient": {Flags: map[string]complete.Predictor{"n": ingredients, "a": predict.Something, "c": predict.Something}},
			"add-dish":       {Flags: map[string]complete.Predictor{"n": dishes}, Args: ingredients},
			"ingredients":    {Flags: map[string]complete.Predictor{"bought": predict.Nothing}},
			"dishes":         {Flags: none},
			"dashboard":      {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"query":          {Args: predict.Set{"$.ingredients[*].name", "$.stock[*].name", "$.dishes[*].name", "$.orders"}},
			"order":          {Flags: map[string]complete.Predictor{"n": dishes, "q": predict.Something}},
			"orders":         {Flags: none},
			"clear-orders":   {Flags: none},
			"process":        {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"search":         {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"check":          {Flags: none},
			"fmt":            {Flags: none},
			"publish":        {Flags: map[string]complete.Predictor{"o": predict.Dirs("*"), "frontmatter": predict.Files("*")}},
			"topic":          {Flags: map[string]complete.Predictor{"l": predict.Nothing}, Args: topics},
			"assist":         {Args: predict.Something},
		},
		Flags: map[string]complete.Predictor{
			"kitchen-file": predict.Files("*.json"),
			"ledger-file":  predict.Files("*.csv"),
			"currency":     predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
			"v":            predict.Nothing,
		},
	}
	cmd.Complete(name)
}

// kitchenNames returns the names of the ingredients or of the dishes of the
// kitchen file, nil if it cannot be read.
func kitchenNames(ingredients bool) []string {
	k, err := dineboard.LoadKitchen(KitchenPath())
	if err != nil {
		return nil
	}
	if ingredients {
		return k.Ingredients.Names()
	}
	return k.Menu.Names()
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/guiluca/dineboard"
	md "github.com/nao1215/markdown"
)

// MenuMarkdown renders the dishes of the menu with their cost per serving.
// Dishes that cannot be costed are listed with the reason.
func MenuMarkdown(costs []dineboard.DishCost) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Menu")
	if len(costs) == 0 {
		doc.PlainText("No dishes yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Dish", "Cost per Serving", "Recipe"},
	}
	var problems []string
	for _, c := range costs {
		cost := "n/a"
		if c.Err == nil {
			cost = c.Cost.String()
		} else {
			problems = append(problems, fmt.Sprintf("%s: %v", c.Dish, c.Err))
		}
		table.Rows = append(table.Rows, []string{c.Dish, cost, RecipeString(c.Recipe)})
	}
	doc.Table(table)

	if len(problems) > 0 {
		doc.H2("Cannot Be Costed")
		doc.BulletList(problems...)
	}
	return doc.String()
}

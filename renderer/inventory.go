package renderer

import (
	"bytes"
	"fmt"

	"github.com/guiluca/dineboard"
	md "github.com/nao1215/markdown"
)

// IngredientsMarkdown renders an inventory as a table of ingredients.
func IngredientsMarkdown(title string, inv *dineboard.Inventory, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if inv.Len() == 0 {
		doc.PlainText("No ingredients yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ingredient", "Amount", "Total Cost", "Price per Unit"},
	}
	for rec := range inv.All() {
		table.Rows = append(table.Rows, []string{
			rec.Name,
			rec.Amount.String(),
			rec.TotalCost.String(),
			fmt.Sprintf("%s / %s", rec.PricePerUnit(), rec.PriceUnit()),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%s: %s", md.Bold("Inventory Value"), inv.Value(currency)))
	return doc.String()
}

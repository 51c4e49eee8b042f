package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/guiluca/dineboard"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// OrdersMarkdown renders the orders waiting to be processed with what they
// will cost.
func OrdersMarkdown(orders []dineboard.Order, costs dineboard.Coster, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Pending Orders")
	if len(orders) == 0 {
		doc.PlainText("No pending orders.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Dish", "Quantity", "Cost per Dish", "Total"},
	}
	total := dineboard.M(0, currency)
	for _, o := range orders {
		row := []string{o.Dish, strconv.Itoa(o.Quantity), "n/a", "n/a"}
		if cost, err := costs.CostPerServing(o.Dish); err == nil {
			cost = cost.InCurrency(currency)
			line := cost.Mul(decimal.NewFromInt(int64(o.Quantity)))
			total = total.Add(line)
			row[2], row[3] = cost.String(), line.String()
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%s: %s", md.Bold("Day Total"), total))
	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/guiluca/dineboard"
	md "github.com/nao1215/markdown"
)

// SearchMarkdown renders the ledger rows found for a day.
func SearchMarkdown(day string, rows []dineboard.LedgerRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Orders on %s", day))
	if len(rows) == 0 {
		doc.PlainText(fmt.Sprintf("No orders recorded on %s.", day))
		return doc.String()
	}
	doc.Table(rowsTable(rows, true))

	total := dineboard.M(0, rows[0].Total.Currency())
	for _, r := range rows {
		total = total.Add(r.Total)
	}
	doc.PlainText(fmt.Sprintf("%s: %s", md.Bold("Daily Expenses"), total))
	return doc.String()
}

func rowsTable(rows []dineboard.LedgerRow, withBatch bool) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Dish", "Quantity", "Cost per Dish", "Total"},
	}
	if withBatch {
		table.Alignment = append(table.Alignment, md.AlignLeft)
		table.Header = append(table.Header, "Batch")
	}
	for _, r := range rows {
		row := []string{r.Dish, strconv.Itoa(r.Quantity), r.CostPerDish.String(), r.Total.String()}
		if withBatch {
			row = append(row, r.Batch)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

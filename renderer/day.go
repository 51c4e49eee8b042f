package renderer

import (
	"bytes"
	"fmt"

	"github.com/guiluca/dineboard"
	md "github.com/nao1215/markdown"
)

// DayMarkdown renders the outcome of processing the orders of a day: the
// rows appended to the ledger and the stock warnings.
func DayMarkdown(s dineboard.Summary, warnings []dineboard.Warning) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Orders of %s", s.Date))
	doc.Table(rowsTable(s.Rows, false))
	doc.PlainText(fmt.Sprintf("%s: %s", md.Bold("Daily Expenses"), s.Total))
	doc.PlainText(fmt.Sprintf("Recorded in %s, batch %s.", s.File, s.Batch))

	if len(warnings) > 0 {
		doc.H2("Stock Warnings")
		lines := make([]string, 0, len(warnings))
		for _, w := range warnings {
			lines = append(lines, w.String())
		}
		doc.BulletList(lines...)
	}
	return doc.String()
}

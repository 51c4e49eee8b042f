package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard"
	"github.com/guiluca/dineboard/date"
	"github.com/guiluca/dineboard/renderer"
)

// reportTask is one report file to publish. It is the data of the front matter template.
type reportTask struct {
	Report string    // dashboard, menu or orders
	Day    date.Date // for orders reports, the day of the orders
	Path   string    // relative to the output directory
	md     string
}

type publishCmd struct {
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "write the kitchen reports and the orders of every day as markdown files" }
func (*publishCmd) Usage() string {
	return `dine publish [-o <dir>] [-frontmatter <file>]

  Writes the dashboard, the menu, and the orders of every day of the ledger
  as markdown files into a directory tree:

    <dir>/dashboard.md
    <dir>/menu.md
    <dir>/orders/<YYYY-MM-DD>.md

  With -frontmatter, every file starts with the given Go template executed
  with the fields .Report, .Day and .Path.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			return fail("failed to parse front matter template: %v", err)
		}
	}

	k, err := DecodeKitchen()
	if err != nil {
		return fail("could not load kitchen: %v", err)
	}
	rows, err := Ledger(k.Currency).Rows()
	if err != nil && !errors.Is(err, dineboard.ErrNotFound) {
		return fail("%v", err)
	}
	if err := dineboard.CheckLedger(rows); err != nil {
		return fail("%v, run 'dine fmt' first", err)
	}

	for _, task := range publishTasks(k, rows) {
		md := task.md
		if frontMatterTpl != nil {
			fm, err := renderFrontMatter(frontMatterTpl, task)
			if err != nil {
				return fail("failed to render front matter of %s: %v", task.Path, err)
			}
			md = fm + "\n" + md
		}

		fullPath := filepath.Join(c.outputDir, task.Path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return fail("failed to create output directory for file %s: %v", task.Path, err)
		}
		if err := os.WriteFile(fullPath, []byte(md), 0644); err != nil {
			return fail("failed to write file %s: %v", task.Path, err)
		}
		log.Printf("Generated %s report %s", task.Report, task.Path)
	}
	fmt.Printf("Published the reports of %d days in %s.\n", len(ledgerDays(rows)), c.outputDir)
	return subcommands.ExitSuccess
}

// publishTasks renders every report of the kitchen and of the ledger rows.
func publishTasks(k *dineboard.Kitchen, rows []dineboard.LedgerRow) []reportTask {
	tasks := []reportTask{
		{Report: "dashboard", Path: "dashboard.md", md: renderer.RenderDashboard(renderer.NewDashboard(k))},
		{Report: "menu", Path: "menu.md", md: renderer.MenuMarkdown(k.MenuCosts())},
	}
	for _, day := range ledgerDays(rows) {
		tasks = append(tasks, reportTask{
			Report: "orders",
			Day:    day,
			Path:   filepath.Join("orders", day.String()+".md"),
			md:     renderer.SearchMarkdown(day.String(), dineboard.SearchByDate(rows, day)),
		})
	}
	return tasks
}

// ledgerDays returns the distinct days of rows sorted by date.
func ledgerDays(rows []dineboard.LedgerRow) []date.Date {
	var days []date.Date
	for _, r := range rows {
		if n := len(days); n == 0 || days[n-1] != r.Date {
			days = append(days, r.Date)
		}
	}
	return days
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}

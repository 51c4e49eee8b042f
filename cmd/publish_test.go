package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/google/subcommands"
	"github.com/guiluca/dineboard"
	"github.com/guiluca/dineboard/date"
)

func row(day, dish string) dineboard.LedgerRow {
	return dineboard.LedgerRow{Date: date.MustParse(day), Dish: dish, Quantity: 1}
}

func TestLedgerDays(t *testing.T) {
	tests := []struct {
		name string
		rows []dineboard.LedgerRow
		want []string
	}{
		{name: "empty ledger"},
		{
			name: "single day",
			rows: []dineboard.LedgerRow{row("2024-01-01", "soup"), row("2024-01-01", "noodles")},
			want: []string{"2024-01-01"},
		},
		{
			name: "several days",
			rows: []dineboard.LedgerRow{
				row("2024-01-01", "soup"),
				row("2024-01-03", "soup"),
				row("2024-01-03", "noodles"),
				row("2024-02-01", "soup"),
			},
			want: []string{"2024-01-01", "2024-01-03", "2024-02-01"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := ledgerDays(tt.rows)
			if len(days) != len(tt.want) {
				t.Fatalf("ledgerDays() = %v, want %v", days, tt.want)
			}
			for i, d := range days {
				if d.String() != tt.want[i] {
					t.Errorf("ledgerDays()[%d] = %v, want %v", i, d, tt.want[i])
				}
			}
		})
	}
}

func TestRenderFrontMatter(t *testing.T) {
	tpl := template.Must(template.New("fm").Parse("---\ntitle: {{.Report}} {{.Day}}\n---"))
	got, err := renderFrontMatter(tpl, reportTask{Report: "orders", Day: date.MustParse("2024-01-02")})
	if err != nil {
		t.Fatal(err)
	}
	if want := "---\ntitle: orders 2024-01-02\n---"; got != want {
		t.Errorf("renderFrontMatter() = %q, want %q", got, want)
	}
}

func TestPublish(t *testing.T) {
	setup(t)
	for _, s := range []struct {
		cmd  subcommands.Command
		args []string
	}{
		{&initCmd{}, []string{"-sample"}},
		{&orderCmd{}, []string{"-n", "stir fry noodles", "-q", "2"}},
		{&processCmd{}, []string{"-d", "2024-01-01"}},
		{&orderCmd{}, []string{"-n", "stir fry noodles"}},
		{&processCmd{}, []string{"-d", "2024-01-02"}},
	} {
		if got := run(t, s.cmd, s.args...); got != subcommands.ExitSuccess {
			t.Fatalf("%s %q = %v", s.cmd.Name(), s.args, got)
		}
	}

	dir := t.TempDir()
	fm := filepath.Join(dir, "fm.tmpl")
	if err := os.WriteFile(fm, []byte("<!-- {{.Report}} -->"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "site")
	if got := run(t, &publishCmd{}, "-o", out, "-frontmatter", fm); got != subcommands.ExitSuccess {
		t.Fatalf("publish = %v", got)
	}

	files := map[string]string{
		"dashboard.md":         "# Kitchen Dashboard",
		"menu.md":              "stir fry noodles",
		"orders/2024-01-01.md": "€4.42",
		"orders/2024-01-02.md": "€2.21",
	}
	for name, want := range files {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Errorf("missing report %s: %v", name, err)
			continue
		}
		content := string(data)
		if !strings.HasPrefix(content, "<!-- ") {
			t.Errorf("%s has no front matter:\n%s", name, content)
		}
		if !strings.Contains(content, want) {
			t.Errorf("%s does not contain %q:\n%s", name, want, content)
		}
	}
}

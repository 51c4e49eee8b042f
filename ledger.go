package dineboard

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/guiluca/dineboard/date"
)

// DefaultLedgerFile is the name of the ledger file when none is configured.
const DefaultLedgerFile = "daily_orders_detailed.csv"

// Ledger column names, in the order they are written.
const (
	ColDate          = "Date"
	ColDish          = "Dish"
	ColQuantity      = "Quantity"
	ColCostPerDish   = "Cost_Per_Dish"
	ColTotal         = "Total"
	ColDailyExpenses = "Daily_Expenses"
	ColBatch         = "Batch"
)

var ledgerHeader = []string{ColDate, ColDish, ColQuantity, ColCostPerDish, ColTotal, ColDailyExpenses, ColBatch}

// LedgerRow is one processed order line of a day.
//
// DailyExpenses is the total of the whole batch the row was written with, it
// is repeated on every row of that batch.
type LedgerRow struct {
	Date          date.Date
	Dish          string
	Quantity      int
	CostPerDish   Money
	Total         Money
	DailyExpenses Money
	Batch         string
}

func (r LedgerRow) record() []string {
	return []string{
		r.Date.String(),
		r.Dish,
		strconv.Itoa(r.Quantity),
		r.CostPerDish.Plain(),
		r.Total.Plain(),
		r.DailyExpenses.Plain(),
		r.Batch,
	}
}

// EncodeLedger writes rows as CSV, preceded by the header line if withHeader is set.
func EncodeLedger(w io.Writer, rows []LedgerRow, withHeader bool) error {
	cw := csv.NewWriter(w)
	if withHeader {
		if err := cw.Write(ledgerHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeLedger reads CSV ledger rows. Columns are found by their header name,
// only the Date column is mandatory and unknown columns are ignored.
// Amounts are read in the given currency.
func DecodeLedger(r io.Reader, currency string) ([]LedgerRow, error) {
	rows, _, err := decodeLedger(r, currency)
	return rows, err
}

func decodeLedger(r io.Reader, currency string) ([]LedgerRow, []string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: header: %v", ErrMalformedLedger, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	if _, ok := col[ColDate]; !ok {
		return nil, nil, fmt.Errorf("%w: no %q column in header %q", ErrMalformedLedger, ColDate, header)
	}

	var rows []LedgerRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedLedger, err)
		}
		line, _ := cr.FieldPos(0)
		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		var row LedgerRow
		if row.Date, err = date.Parse(field(ColDate)); err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLedger, line, err)
		}
		row.Dish = field(ColDish)
		row.Batch = field(ColBatch)
		if s := field(ColQuantity); s != "" {
			if row.Quantity, err = strconv.Atoi(s); err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: quantity: %v", ErrMalformedLedger, line, err)
			}
		}
		for name, m := range map[string]*Money{ColCostPerDish: &row.CostPerDish, ColTotal: &row.Total, ColDailyExpenses: &row.DailyExpenses} {
			*m = M(0, currency)
			if s := field(name); s != "" {
				if *m, err = ParseMoney(s, currency); err != nil {
					return nil, nil, fmt.Errorf("%w: line %d: %s: %v", ErrMalformedLedger, line, name, err)
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}

// CheckLedger verifies that rows are sorted by date, the condition for
// searching them by date.
func CheckLedger(rows []LedgerRow) error {
	for i := 1; i < len(rows); i++ {
		if rows[i].Date.Before(rows[i-1].Date) {
			return fmt.Errorf("%w: row %d (%v) comes after %v", ErrOutOfOrder, i+1, rows[i].Date, rows[i-1].Date)
		}
	}
	return nil
}

// SortLedger sorts rows by date. Rows of the same day keep their relative order.
func SortLedger(rows []LedgerRow) {
	slices.SortStableFunc(rows, func(a, b LedgerRow) int { return a.Date.Compare(b.Date) })
}

// Summary describes what AppendDay wrote.
type Summary struct {
	File  string
	Date  date.Date
	Batch string
	Rows  []LedgerRow
	Total Money
}

// LedgerFile is a ledger persisted as a CSV file.
type LedgerFile struct {
	Path     string
	Currency string
}

// NewLedgerFile returns the ledger stored at path, with amounts in currency.
func NewLedgerFile(path, currency string) *LedgerFile {
	return &LedgerFile{Path: path, Currency: currency}
}

// Rows reads all the rows of the ledger.
//
// A ledger that does not exist yet is reported with ErrNotFound, so that it
// can be told apart from a ledger without matching rows.
func (l *LedgerFile) Rows() ([]LedgerRow, error) {
	rows, _, err := l.read()
	return rows, err
}

func (l *LedgerFile) read() ([]LedgerRow, []string, error) {
	f, err := os.Open(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("ledger %q: %w: %w", l.Path, ErrNotFound, err)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("ledger %q: %w: %w", l.Path, ErrIOFailure, err)
	}
	defer f.Close()
	rows, header, err := decodeLedger(f, l.Currency)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger %q: %w", l.Path, err)
	}
	return rows, header, nil
}

// AppendDay appends the processed orders of a day at the end of the ledger.
//
// Every order is costed first, nothing is written if one cannot be. Each row
// carries the cost of one serving, the order total and the day total. The
// ledger must stay sorted by date: a day before the last day already in the
// ledger is rejected with ErrOutOfOrder, and the last day itself with
// ErrDayRecorded so that every row of a day carries the whole day total.
func (l *LedgerFile) AppendDay(on date.Date, orders []Order, costs Coster) (Summary, error) {
	if len(orders) == 0 {
		return Summary{}, fmt.Errorf("append %v: %w", on, ErrNoOrders)
	}
	summary := Summary{File: l.Path, Date: on, Batch: uuid.NewString(), Total: M(0, l.Currency)}
	for _, o := range orders {
		cost, err := costs.CostPerServing(o.Dish)
		if err != nil {
			return Summary{}, fmt.Errorf("append %v: %w", on, err)
		}
		cost = cost.InCurrency(l.Currency)
		total := cost.Mul(newDecimal(o.Quantity))
		summary.Total = summary.Total.Add(total)
		summary.Rows = append(summary.Rows, LedgerRow{
			Date:        on,
			Dish:        o.Dish,
			Quantity:    o.Quantity,
			CostPerDish: cost,
			Total:       total,
			Batch:       summary.Batch,
		})
	}
	for i := range summary.Rows {
		summary.Rows[i].DailyExpenses = summary.Total
	}

	existing, header, err := l.read()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Summary{}, err
	}
	if header != nil && !slices.Equal(header, ledgerHeader) {
		return Summary{}, fmt.Errorf("ledger %q: %w: unexpected header %q", l.Path, ErrMalformedLedger, header)
	}
	if n := len(existing); n > 0 {
		switch last := existing[n-1].Date; {
		case on.Before(last):
			return Summary{}, fmt.Errorf("append %v after %v: %w", on, last, ErrOutOfOrder)
		case on == last:
			return Summary{}, fmt.Errorf("append %v: %w", on, ErrDayRecorded)
		}
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, summary.Rows, header == nil); err != nil {
		return Summary{}, fmt.Errorf("ledger %q: %w: %w", l.Path, ErrIOFailure, err)
	}
	if dir := filepath.Dir(l.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Summary{}, fmt.Errorf("ledger %q: %w: %w", l.Path, ErrIOFailure, err)
		}
	}
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return Summary{}, fmt.Errorf("ledger %q: %w: %w", l.Path, ErrIOFailure, err)
	}
	defer f.Close()
	if _, err := f.Write(buf.Bytes()); err != nil {
		return Summary{}, fmt.Errorf("ledger %q: %w: %w", l.Path, ErrIOFailure, err)
	}
	return summary, nil
}

// Check reports ErrOutOfOrder if the ledger file is not sorted by date.
func (l *LedgerFile) Check() error {
	rows, err := l.Rows()
	if err != nil {
		return err
	}
	if err := CheckLedger(rows); err != nil {
		return fmt.Errorf("ledger %q: %w", l.Path, err)
	}
	return nil
}

// Fmt rewrites the ledger file sorted by date, keeping the relative order of
// rows of the same day. It repairs ledgers where days were backfilled by hand.
func (l *LedgerFile) Fmt() error {
	rows, err := l.Rows()
	if err != nil {
		return err
	}
	SortLedger(rows)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, rows, true); err != nil {
		return fmt.Errorf("ledger %q: %w: %w", l.Path, ErrIOFailure, err)
	}
	if err := os.WriteFile(l.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("ledger %q: %w: %w", l.Path, ErrIOFailure, err)
	}
	return nil
}

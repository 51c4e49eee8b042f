package dineboard

import (
	"fmt"

	"github.com/guiluca/dineboard/date"
)

// SearchByDate returns all the rows of the given day, in ledger order.
//
// rows must be sorted by date: a binary search locates one row of the day,
// then the neighbours sharing the same date are collected on both sides.
// The result is empty when no row matches.
func SearchByDate(rows []LedgerRow, target date.Date) []LedgerRow {
	if len(rows) == 0 {
		return nil
	}

	found := -1
	lo, hi := 0, len(rows)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := rows[mid].Date.Compare(target); {
		case c == 0:
			found = mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
		if found >= 0 {
			break
		}
	}
	if found < 0 {
		return nil
	}

	first, last := found, found
	for first > 0 && rows[first-1].Date == target {
		first--
	}
	for last < len(rows)-1 && rows[last+1].Date == target {
		last++
	}
	result := make([]LedgerRow, last-first+1)
	copy(result, rows[first:last+1])
	return result
}

// FindByDate returns the rows of the ledger for target, a YYYY-MM-DD date.
//
// It fails with ErrNotFound when the ledger does not exist yet, and returns
// an empty result when the ledger has no row for that day.
func (l *LedgerFile) FindByDate(target string) ([]LedgerRow, error) {
	day, err := date.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDate, err)
	}
	rows, err := l.Rows()
	if err != nil {
		return nil, err
	}
	return SearchByDate(rows, day), nil
}

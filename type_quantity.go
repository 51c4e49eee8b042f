package dineboard

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is an amount of something expressed in a unit ("200 g", "1 unit").
//
// Units are plain labels: two quantities are compatible only when their
// labels are identical. There is no conversion between units, "kg" and "g"
// are different units.
type Quantity struct {
	value decimal.Decimal
	unit  string
}

// Q creates a quantity from a number and a unit label.
func Q[T float64 | int | int64 | decimal.Decimal](value T, unit string) Quantity {
	return Quantity{value: newDecimal(value), unit: normalizeUnit(unit)}
}

func normalizeUnit(unit string) string { return strings.ToLower(strings.Join(strings.Fields(unit), " ")) }

// ParseQuantity parses a text amount made of a leading number and an optional
// unit label, e.g. "20 kg", "200g", "1 unit" or "3".
func ParseQuantity(text string) (Quantity, error) {
	s := strings.TrimSpace(text)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return Quantity{}, fmt.Errorf("%w: %q has no numeric prefix", ErrMalformedQuantity, text)
	}
	value, err := decimal.NewFromString(s[:end])
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q: %v", ErrMalformedQuantity, text, err)
	}
	return Quantity{value: value, unit: normalizeUnit(s[end:])}, nil
}

// MustParseQuantity is like ParseQuantity but panics on error.
func MustParseQuantity(text string) Quantity {
	q, err := ParseQuantity(text)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity) Value() decimal.Decimal { return q.value }
func (q Quantity) Unit() string           { return q.unit }
func (q Quantity) IsZero() bool           { return q.value.IsZero() }
func (q Quantity) IsPositive() bool       { return q.value.IsPositive() }

// Compatible reports whether q and p share the same unit label.
func (q Quantity) Compatible(p Quantity) bool { return q.unit == p.unit }

func (q Quantity) check(p Quantity) error {
	if !q.Compatible(p) {
		return fmt.Errorf("%w: %q vs %q", ErrIncompatibleUnits, q.unit, p.unit)
	}
	return nil
}

// Compare returns -1, 0 or +1 if q is less than, equal to or greater than p.
func (q Quantity) Compare(p Quantity) (int, error) {
	if err := q.check(p); err != nil {
		return 0, err
	}
	return q.value.Cmp(p.value), nil
}

// Equal reports whether q and p are the same amount of the same unit.
func (q Quantity) Equal(p Quantity) (bool, error) {
	c, err := q.Compare(p)
	return c == 0, err
}

func (q Quantity) Add(p Quantity) (Quantity, error) {
	if err := q.check(p); err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value.Add(p.value), unit: q.unit}, nil
}

// Sub returns q - p. The result may be negative, callers floor it when needed.
func (q Quantity) Sub(p Quantity) (Quantity, error) {
	if err := q.check(p); err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value.Sub(p.value), unit: q.unit}, nil
}

// Mul scales q by n, keeping the unit.
func (q Quantity) Mul(n decimal.Decimal) Quantity { return Quantity{value: q.value.Mul(n), unit: q.unit} }

// String formats the quantity as "<value> <unit>".
func (q Quantity) String() string {
	if q.unit == "" {
		return q.value.String()
	}
	return q.value.String() + " " + q.unit
}

func (q Quantity) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

func (q *Quantity) UnmarshalText(text []byte) error {
	parsed, err := ParseQuantity(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

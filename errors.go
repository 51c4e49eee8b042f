package dineboard

import "errors"

// Errors returned by the bookkeeping engine. They are always wrapped with
// context, test them with errors.Is.
var (
	// ErrMalformedQuantity is returned when a text amount has no numeric prefix.
	ErrMalformedQuantity = errors.New("malformed quantity")
	// ErrIncompatibleUnits is returned when comparing or combining quantities with different units.
	ErrIncompatibleUnits = errors.New("incompatible units")
	// ErrUnitMismatch is returned when a recipe unit differs from the ingredient's price unit.
	ErrUnitMismatch = errors.New("unit mismatch")
	// ErrNotFound is returned for a missing ingredient, dish or ledger.
	ErrNotFound = errors.New("not found")
	// ErrInvalidIngredient is returned when an ingredient fails validation.
	ErrInvalidIngredient = errors.New("invalid ingredient")
	// ErrInvalidDish is returned when a dish fails validation.
	ErrInvalidDish = errors.New("invalid dish")
	// ErrIOFailure is returned when the ledger cannot be read or written.
	ErrIOFailure = errors.New("i/o failure")
	// ErrOutOfOrder is returned when ledger rows are not sorted by date.
	ErrOutOfOrder = errors.New("ledger out of chronological order")
	// ErrDayRecorded is returned when orders are appended for a day the ledger already holds.
	ErrDayRecorded = errors.New("day already recorded")
	// ErrNoOrders is returned when there is nothing to append to the ledger.
	ErrNoOrders = errors.New("no orders")
	// ErrMalformedDate is returned when a date is not in YYYY-MM-DD format.
	ErrMalformedDate = errors.New("malformed date")
	// ErrMalformedLedger is returned when the ledger content cannot be decoded.
	ErrMalformedLedger = errors.New("malformed ledger")
)

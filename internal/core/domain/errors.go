package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrBadHeader indicates a snapshot file's header row does not match
	// the expected column list. The whole file is unusable.
	ErrBadHeader = errors.New("unexpected header row")

	// ErrColumnCount indicates a row has the wrong number of columns for
	// its layout. Loading aborts - a partial registry is worse than none.
	ErrColumnCount = errors.New("wrong column count")

	// ErrInvalidNumber indicates a row's registry number is missing,
	// non-numeric, or out of range. The row is discarded, the run continues.
	ErrInvalidNumber = errors.New("invalid dog number")

	// ErrDuplicateNumber indicates a registry number was seen twice within
	// one snapshot.
	ErrDuplicateNumber = errors.New("duplicate dog number")

	// ErrDuplicateChip indicates a microchip number was seen twice within
	// one snapshot or one update set.
	ErrDuplicateChip = errors.New("duplicate microchip")

	// ErrNoChip indicates an operation that needs a microchip was asked to
	// run on a record without one.
	ErrNoChip = errors.New("no microchip recorded")
)

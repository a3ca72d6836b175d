package tariff

import "errors"

var (
	// ErrNotFound is returned when a required reference row is missing
	// (wholesale price, loss factor, effective pass-through charge, archetype).
	ErrNotFound = errors.New("tariff: not found")
	// ErrEmptyDataset is returned when a reference dataset is empty for the
	// requested slice.
	ErrEmptyDataset = errors.New("tariff: empty dataset")
	// ErrValidation is returned when input data or a computed result fails
	// a domain invariant.
	ErrValidation = errors.New("tariff: validation failed")
	// ErrConfig is returned when the settings file is missing or malformed.
	ErrConfig = errors.New("tariff: invalid configuration")
)

package dataset

import "errors"

var (
	// ErrNotFound indicates the data file path does not resolve.
	ErrNotFound = errors.New("data file not found")

	// ErrEmptyData indicates the file holds no data rows.
	ErrEmptyData = errors.New("data file has no rows")

	// ErrInvalidFormat indicates the file could not be parsed as tabular data.
	ErrInvalidFormat = errors.New("unsupported or corrupt data file")
)

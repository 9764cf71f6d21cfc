package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrInvalidMonth indicates a month outside the YYYY-MM format.
	ErrInvalidMonth = errors.New("month must be formatted YYYY-MM")
	// ErrDuplicateMonth indicates two records for the same month.
	ErrDuplicateMonth = errors.New("at most one record per month")
	// ErrNegativeValue indicates a negative sales or coverage figure.
	ErrNegativeValue = errors.New("sales and coverage figures must not be negative")
)

package daterange

import "github.com/ayoisaiah/daysleft/internal/apperr"

var (
	// ErrInvalidRange is returned when a range does not end strictly after it
	// starts.
	ErrInvalidRange = &apperr.Error{
		Message: "invalid range: end (%s) must be after start (%s)",
	}

	// ErrInvalidMonth signals a month outside 1-12 during month arithmetic.
	// It indicates a bug and must never be clamped away.
	ErrInvalidMonth = &apperr.Error{
		Message: "invalid month: %d is outside 1-12",
	}
)

package timeutil

import "github.com/ayoisaiah/daysleft/internal/apperr"

var (
	errEmptyDate = &apperr.Error{
		Message: "date must not be empty",
	}

	errParsingDate = &apperr.Error{
		Message: "unable to parse date %q: use YYYY-MM-DD, YYYY-MM-DD HH:MM, RFC 3339 or a phrase like 'next friday'",
	}

	errNotAbsolute = &apperr.Error{
		Message: "date %q is not absolute: use YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC 3339",
	}

	errUnknownTimezone = &apperr.Error{
		Message: "unknown timezone %q",
	}
)

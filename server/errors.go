package server

import "github.com/ayoisaiah/daysleft/internal/apperr"

var (
	errBadInstant = &apperr.Error{
		Message: "invalid instant %q",
	}

	errParseTemplate = &apperr.Error{
		Message: "parsing page template failed",
	}

	errServe = &apperr.Error{
		Message: "server stopped unexpectedly",
	}

	errUnsupportedPlatform = &apperr.Error{
		Message: "opening a browser is not supported on %s",
	}
)

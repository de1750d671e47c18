package dashboard

import "github.com/ayoisaiah/daysleft/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse settings.cmd option",
	}

	errRunCmd = &apperr.Error{
		Message: "running %q failed",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)

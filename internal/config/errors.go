package config

import "github.com/ayoisaiah/daysleft/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidDate = &apperr.Error{
		Message: "invalid %s date",
	}

	errInvalidDateValue = &apperr.Error{
		Message: "invalid %s date: unsupported value %v",
	}

	errInvalidTickInterval = &apperr.Error{
		Message: "tick interval must be between %v and %v, got %v",
	}

	errInvalidTickFormat = &apperr.Error{
		Message: "invalid tick interval %q",
	}

	errInvalidPort = &apperr.Error{
		Message: "server port must be between 1 and %d, got %d",
	}

	errInvalidTimezone = &apperr.Error{
		Message: "invalid timezone",
	}

	errInvalidRange = &apperr.Error{
		Message: "invalid range",
	}
)

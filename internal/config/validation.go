package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks the settings for correctness.
func Validate(s *Settings) error {
	var errs []ValidationError

	errs = append(errs, validateStorage(&s.Storage)...)
	errs = append(errs, validateLog(&s.Log)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateStorage(st *StorageSettings) []ValidationError {
	if IsValidDriver(st.Driver) {
		return nil
	}
	return []ValidationError{{
		Field:   "storage.driver",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(storageDrivers, ", ")),
		Value:   st.Driver,
		Wrapped: ErrInvalidConfig,
	}}
}

func validateLog(lg *LogSettings) []ValidationError {
	var errs []ValidationError

	if !slices.Contains(logLevels, lg.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logLevels, ", ")),
			Value:   lg.Level,
			Wrapped: ErrInvalidConfig,
		})
	}
	if !slices.Contains(logFormats, lg.Format) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logFormats, ", ")),
			Value:   lg.Format,
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

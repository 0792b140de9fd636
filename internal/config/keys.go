package config

import (
	"fmt"
	"slices"
	"strconv"
)

// Setting keys accepted by Settings.Set, in display order.
const (
	KeyStorageDriver    = "storage.driver"
	KeyStoragePath      = "storage.path"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyUINoColor        = "ui.no_color"
	KeyUINonInteractive = "ui.non_interactive"
)

var settingKeys = []string{
	KeyStorageDriver, KeyStoragePath, KeyLogLevel, KeyLogFormat, KeyUINoColor, KeyUINonInteractive,
}

// SettingKeys returns the keys accepted by Set.
func SettingKeys() []string {
	return slices.Clone(settingKeys)
}

// Set assigns value to the setting named key. The result is not validated;
// call Validate before saving.
func (s *Settings) Set(key, value string) error {
	switch key {
	case KeyStorageDriver:
		s.Storage.Driver = value
	case KeyStoragePath:
		s.Storage.Path = value
	case KeyLogLevel:
		s.Log.Level = value
	case KeyLogFormat:
		s.Log.Format = value
	case KeyUINoColor, KeyUINonInteractive:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &ValidationError{
				Field:   key,
				Message: "must be true or false",
				Value:   value,
				Wrapped: ErrInvalidConfig,
			}
		}
		if key == KeyUINoColor {
			s.UI.NoColor = b
		} else {
			s.UI.NonInteractive = b
		}
	default:
		return fmt.Errorf("%w: unknown setting %q", ErrInvalidConfig, key)
	}
	return nil
}

// Get returns the value of the setting named key as text.
func (s *Settings) Get(key string) (string, bool) {
	switch key {
	case KeyStorageDriver:
		return s.Storage.Driver, true
	case KeyStoragePath:
		return s.Storage.Path, true
	case KeyLogLevel:
		return s.Log.Level, true
	case KeyLogFormat:
		return s.Log.Format, true
	case KeyUINoColor:
		return strconv.FormatBool(s.UI.NoColor), true
	case KeyUINonInteractive:
		return strconv.FormatBool(s.UI.NonInteractive), true
	}
	return "", false
}

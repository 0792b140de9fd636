package config

import "slices"

// Settings is the root settings aggregate.
type Settings struct {
	Storage StorageSettings `yaml:"storage"`
	Log     LogSettings     `yaml:"log"`
	UI      UISettings      `yaml:"ui"`
}

// StorageSettings selects the key-value storage driver.
type StorageSettings struct {
	// Driver is one of "file", "badger", "sqlite" or "memory".
	Driver string `yaml:"driver" env:"ADTAX_STORAGE_DRIVER"`
	// Path overrides the storage location. Empty means the data directory.
	Path string `yaml:"path" env:"ADTAX_STORAGE_PATH"`
}

// LogSettings configures the zap logger.
type LogSettings struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level" env:"ADTAX_LOG_LEVEL"`
	// Format is "console" or "json".
	Format string `yaml:"format" env:"ADTAX_LOG_FORMAT"`
}

// UISettings configures terminal presentation.
type UISettings struct {
	NoColor        bool `yaml:"no_color" env:"ADTAX_NO_COLOR"`
	NonInteractive bool `yaml:"non_interactive" env:"ADTAX_NON_INTERACTIVE"`
}

// Storage driver names.
const (
	DriverFile   = "file"
	DriverBadger = "badger"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

var storageDrivers = []string{DriverFile, DriverBadger, DriverSQLite, DriverMemory}

var logLevels = []string{"debug", "info", "warn", "error"}

var logFormats = []string{"console", "json"}

// IsValidDriver checks if the given name is a known storage driver.
func IsValidDriver(name string) bool {
	return slices.Contains(storageDrivers, name)
}

// StorageDrivers returns all known storage driver names.
func StorageDrivers() []string {
	return slices.Clone(storageDrivers)
}

package defs

// Storage keys. Each key holds a single JSON value.
const (
	// ConfigKey holds the naming Configuration.
	ConfigKey = "adtax-config"

	// HistoryKey holds the ordered list of generated names.
	HistoryKey = "adtax-generated-names"

	// APIKeysKey holds the placeholder API key list.
	APIKeysKey = "adtax-api-keys"
)

// File and directory names under the data directory.
const (
	// AppDir is the directory name under the user config dir.
	AppDir = "adtax"

	// SettingsYAML is the tool settings file.
	SettingsYAML = "settings.yaml"

	// DotEnv is the optional environment file loaded before env overrides.
	DotEnv = ".env"

	// ExportJSON is the default file name for configuration exports.
	ExportJSON = "adtax-config.json"

	// BadgerSubdir holds the badger database files.
	BadgerSubdir = "badger"

	// SQLiteDB is the sqlite database file name.
	SQLiteDB = "adtax.db"
)

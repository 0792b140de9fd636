package config

// Default value constants.
const (
	DefaultStorageDriver = DriverFile
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
)

// NewDefaultSettings returns Settings with all fields set to compiled defaults.
func NewDefaultSettings() *Settings {
	return &Settings{
		Storage: StorageSettings{Driver: DefaultStorageDriver},
		Log: LogSettings{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		UI: UISettings{},
	}
}

// Package cli provides the Cobra command tree and dependency injection
// wiring for the adtax CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/yunhoi129/adtax/internal/apikey"
	"github.com/yunhoi129/adtax/internal/config"
	"github.com/yunhoi129/adtax/internal/generator"
	"github.com/yunhoi129/adtax/internal/history"
	"github.com/yunhoi129/adtax/internal/logging"
	"github.com/yunhoi129/adtax/internal/naming"
	"github.com/yunhoi129/adtax/internal/storage"
	"github.com/yunhoi129/adtax/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Settings        *config.Settings
	// SettingsManager persists the tool settings of DataDir.
	SettingsManager *config.Manager
	DataDir         string
	Logger          *zap.Logger
	Store           storage.Store
	Configs         *naming.ConfigStore
	History         *history.Store
	Keys            *apikey.Store
	Generator       *generator.Generator
	Theme           *ui.Theme
	Headless        *ui.HeadlessManager
	// CopyToClipboard puts text on the system clipboard.
	CopyToClipboard func(string) error
	// Stdin feeds full-screen views.
	Stdin           io.Reader
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// InitDependencies creates the dependencies that need no settings.
// Storage and the stores built on it are opened lazily by EnsureStorage
// once the global flags are parsed.
func InitDependencies() {
	deps = &Dependencies{
		Logger:          zap.NewNop(),
		Theme:           ui.NewTheme(false),
		Headless:        ui.NewHeadlessManager(),
		CopyToClipboard: clipboard.WriteAll,
		Stdin:           os.Stdin,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// globalOptions holds the persistent root flags.
type globalOptions struct {
	DataDir        string
	Storage        string
	LogLevel       string
	NoColor        bool
	NonInteractive bool
}

// EnsureStorage loads settings, builds the logger and opens storage.
// Subsequent calls are no-ops once storage is open.
func (d *Dependencies) EnsureStorage(opts globalOptions) error {
	if d.Store != nil {
		return nil
	}

	dataDir, err := config.ResolveDataDir(opts.DataDir)
	if err != nil {
		return err
	}
	mgr := config.NewManager(nil)
	settings, err := mgr.Load(dataDir)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	applyFlags(settings, opts)
	if err := config.Validate(settings); err != nil {
		return err
	}

	color := !settings.UI.NoColor && d.Headless.StdoutIsTerminal()
	logger, err := logging.NewLogger(settings.Log, color)
	if err != nil {
		return err
	}
	for _, w := range mgr.Warnings() {
		logger.Warn(w)
	}

	storeDir := dataDir
	if settings.Storage.Path != "" {
		storeDir = settings.Storage.Path
	}
	st, err := storage.Open(settings.Storage.Driver, storeDir, logger)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", settings.Storage.Driver, err)
	}
	logger.Debug("storage opened",
		zap.String("driver", settings.Storage.Driver), zap.String("dir", storeDir))

	d.Settings = settings
	d.SettingsManager = mgr
	d.DataDir = dataDir
	d.Theme = ui.NewTheme(settings.UI.NoColor)
	if settings.UI.NonInteractive {
		d.Headless.ForceHeadless(true)
	}
	d.Wire(st, logger)
	return nil
}

// Wire builds the stores and the generator on st.
func (d *Dependencies) Wire(st storage.Store, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d.Logger = logger
	d.Store = st
	d.Configs = naming.NewConfigStore(st, logger)
	d.History = history.NewStore(st, logger)
	d.Keys = apikey.NewStore(st, logger)
	d.Generator = generator.New(d.Configs, d.History, generator.WithLogger(logger))
}

// Close releases storage and flushes the logger.
func (d *Dependencies) Close() error {
	var err error
	if d.Store != nil {
		err = d.Store.Close()
		d.Store = nil
	}
	if d.Logger != nil {
		_ = d.Logger.Sync()
	}
	return err
}

// interactive reports whether forms may be shown.
func (d *Dependencies) interactive() bool {
	return d.Headless != nil && !d.Headless.IsHeadless()
}

func applyFlags(s *config.Settings, opts globalOptions) {
	if opts.Storage != "" {
		s.Storage.Driver = opts.Storage
	}
	if opts.LogLevel != "" {
		s.Log.Level = opts.LogLevel
	}
	if opts.NoColor {
		s.UI.NoColor = true
	}
	if opts.NonInteractive {
		s.UI.NonInteractive = true
	}
}

// errNoDeps is returned when a command runs before InitDependencies.
var errNoDeps = errors.New("dependencies not initialized")

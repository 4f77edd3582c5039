package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/splitpane/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading config.toml from the
// XDG config directory, with SPLITPANE_* environment overrides.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir)
}

func newManager(configDir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// SPLITPANE_WORKSPACE_SPLIT_MODE overrides workspace.split_mode, and so on.
	v.SetEnvPrefix("SPLITPANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SPLITPANE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SPLITPANE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SPLITPANE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SPLITPANE_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load reads defaults, the config file and the environment, then
// normalizes and validates the result. A missing file is created with
// the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.buildConfig()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// buildConfig unmarshals viper's state into a normalized, validated Config.
func (m *Manager) buildConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := fillPaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func fillPaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format != "json" {
		config.Logging.Format = "console"
	}

	switch strings.ToLower(strings.TrimSpace(config.Export.Format)) {
	case "yaml", "yml":
		config.Export.Format = "yaml"
	default:
		config.Export.Format = "json"
	}

	config.Workspace.PlaceholderLabel = strings.TrimSpace(config.Workspace.PlaceholderLabel)
	config.Workspace.DefaultLayout = strings.TrimSpace(config.Workspace.DefaultLayout)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path of the file viper read.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults as config.toml.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(configFile, filePerm); err != nil {
		return err
	}
	// The schema only helps editors, so a failure here is not fatal.
	if err := GenerateSchemaFile(); err != nil {
		logging.NewFromEnv().Warn().Err(err).Msg("could not write config schema")
	}
	return nil
}

func (m *Manager) configDir() string {
	dir, err := GetConfigDir()
	if err != nil {
		return "."
	}
	return dir
}

// setDefaults registers every key so env overrides and unmarshal see them.
func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("workspace.default_split_ratio", d.Workspace.DefaultSplitRatio)
	m.viper.SetDefault("workspace.split_mode", d.Workspace.SplitMode)
	m.viper.SetDefault("workspace.show_close_buttons", d.Workspace.ShowCloseButtons)
	m.viper.SetDefault("workspace.confirm_last_pane_close", d.Workspace.ConfirmLastPaneClose)
	m.viper.SetDefault("workspace.placeholder_label", d.Workspace.PlaceholderLabel)
	m.viper.SetDefault("workspace.default_layout", d.Workspace.DefaultLayout)

	m.viper.SetDefault("session.autosave", d.Session.Autosave)
	m.viper.SetDefault("session.snapshot_interval_ms", d.Session.SnapshotIntervalMs)

	m.viper.SetDefault("database.path", d.Database.Path)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.log_dir", d.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", d.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", d.Logging.MaxBackups)

	m.viper.SetDefault("export.format", d.Export.Format)
	m.viper.SetDefault("export.parallelism", d.Export.Parallelism)
}

var (
	globalManager     *Manager
	globalManagerOnce sync.Once
)

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration, or the defaults before Init.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}

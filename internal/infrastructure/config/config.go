// Package config loads splitpane settings from TOML with viper.
package config

// Config is the complete splitpane configuration.
type Config struct {
	Workspace WorkspaceConfig `mapstructure:"workspace" toml:"workspace" json:"workspace"`
	Session   SessionConfig   `mapstructure:"session" toml:"session" json:"session"`
	Database  DatabaseConfig  `mapstructure:"database" toml:"database" json:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
	Export    ExportConfig    `mapstructure:"export" toml:"export" json:"export"`
}

// WorkspaceConfig controls how panes are created and closed.
type WorkspaceConfig struct {
	// DefaultSplitRatio is the share kept by the split pane, clamped to [0.1, 0.9].
	DefaultSplitRatio float64 `mapstructure:"default_split_ratio" toml:"default_split_ratio" json:"default_split_ratio" jsonschema:"minimum=0.1,maximum=0.9"`
	// SplitMode is copied into every new pane; panes created while it is off cannot be split.
	SplitMode            bool   `mapstructure:"split_mode" toml:"split_mode" json:"split_mode"`
	ShowCloseButtons     bool   `mapstructure:"show_close_buttons" toml:"show_close_buttons" json:"show_close_buttons"`
	ConfirmLastPaneClose bool   `mapstructure:"confirm_last_pane_close" toml:"confirm_last_pane_close" json:"confirm_last_pane_close"`
	PlaceholderLabel     string `mapstructure:"placeholder_label" toml:"placeholder_label" json:"placeholder_label"`
	// DefaultLayout is opened by `splitpane edit` when no name is given.
	DefaultLayout string `mapstructure:"default_layout" toml:"default_layout" json:"default_layout"`
}

// SessionConfig controls autosave of the edited layout.
type SessionConfig struct {
	Autosave           bool `mapstructure:"autosave" toml:"autosave" json:"autosave"`
	SnapshotIntervalMs int  `mapstructure:"snapshot_interval_ms" toml:"snapshot_interval_ms" json:"snapshot_interval_ms" jsonschema:"minimum=100"`
}

// DatabaseConfig holds the layout database location.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/splitpane/layouts.db
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
}

// ExportConfig controls layout export.
type ExportConfig struct {
	Format      string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=json,enum=yaml"`
	Parallelism int    `mapstructure:"parallelism" toml:"parallelism" json:"parallelism" jsonschema:"minimum=1"`
}

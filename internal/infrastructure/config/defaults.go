package config

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultSnapshotIntervalMs = 2000
	defaultExportParallelism  = 4
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			DefaultSplitRatio:    0.5,
			SplitMode:            true,
			ShowCloseButtons:     true,
			ConfirmLastPaneClose: true,
			PlaceholderLabel:     "empty pane",
			DefaultLayout:        "default",
		},
		Session: SessionConfig{
			Autosave:           true,
			SnapshotIntervalMs: defaultSnapshotIntervalMs,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			MaxSizeMB:     10,
			MaxBackups:    3,
		},
		Export: ExportConfig{
			Format:      "json",
			Parallelism: defaultExportParallelism,
		},
	}
}

package editor

import "github.com/erraggy/yamltools/yamlerrors"

// Option is a function that configures an Editor
type Option func(*editorConfig) error

// editorConfig holds configuration collected from options
type editorConfig struct {
	logger Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*editorConfig, error) {
	cfg := &editorConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets a structured logger for debug output during edit
// operations. By default, no logging is performed.
//
// The logger interface is compatible with log/slog, zap, and zerolog.
// Use NewSlogAdapter to wrap a *slog.Logger.
//
// Example:
//
//	ed, err := editor.New(
//	    editor.WithLogger(editor.NewSlogAdapter(slog.Default())),
//	)
func WithLogger(l Logger) Option {
	return func(cfg *editorConfig) error {
		if l == nil {
			return &yamlerrors.ConfigError{Option: "WithLogger", Message: "logger cannot be nil"}
		}
		cfg.logger = l
		return nil
	}
}

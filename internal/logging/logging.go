// Package logging builds the zap loggers used by the commands.
//
// Output is JSON by default. With ENV=development, or when the caller asks
// for it, output switches to zap's human-readable console encoder with
// caller information.
package logging

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options configures New.
type Options struct {
	// Level is a zap level name: debug, info, warn, error.
	// Empty means info.
	Level string

	// Development selects the console encoder. It is also forced on by
	// ENV=development.
	Development bool
}

// New returns a logger configured by opts.
func New(opts Options) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if opts.Level != "" {
		var err error
		level, err = zap.ParseAtomicLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "logging: level %q", opts.Level)
		}
	}

	cfg := zap.NewProductionConfig()
	if opts.Development || os.Getenv("ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = level

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "logging: build")
	}
	return logger, nil
}

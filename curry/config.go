// Package: curried/curry
//
// config.go — creation-time configuration and its deterministic defaults.
//
// Defaults:
//   • nonRest = the target's declared count (nonRestSet = false)
//   • logger  = discards everything
//   • name    = "anonymous"

package curry

import (
	"io"
	"log/slog"
)

const defaultName = "anonymous"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// config is resolved once in Create and shared read-only by every derived
// Builder.
type config struct {
	nonRest    int
	nonRestSet bool
	logger     *slog.Logger
	name       string
}

// newConfig applies opts in order on top of the defaults.
func newConfig(opts ...Option) config {
	cfg := config{logger: discardLogger, name: defaultName}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.name == "" {
		cfg.name = defaultName
	}

	return cfg
}

package config

import (
	"fmt"

	"github.com/rileyhilliard/ptop/internal/errors"
)

// Validate checks the resolved config and returns a structured error for the
// first problem found.
func Validate(cfg *Config) error {
	if cfg.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval must be positive, got %s", cfg.Interval),
			"Try something like 1s, 2s, or 500ms.")
	}

	if cfg.HistorySize <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("History size must be positive, got %d", cfg.HistorySize),
			"The default is 80 samples.")
	}

	if cfg.PageSize <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Page size must be positive, got %d", cfg.PageSize),
			"The default is 20 rows.")
	}

	if cfg.GraphHeight <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Graph height must be positive, got %d", cfg.GraphHeight),
			"The default is 15 rows.")
	}

	switch cfg.Source {
	case SourceProcfs:
		if cfg.ProcRoot == "" {
			return errors.New(errors.ErrConfig,
				"proc_root can't be empty with the procfs source",
				"Leave it unset to use /proc.")
		}
	case SourceGopsutil:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown source '%s'", cfg.Source),
			fmt.Sprintf("Use '%s' or '%s'.", SourceProcfs, SourceGopsutil))
	}

	return nil
}

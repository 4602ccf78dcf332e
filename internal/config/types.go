package config

import "time"

// Source names accepted for the Source field.
const (
	SourceProcfs   = "procfs"
	SourceGopsutil = "gopsutil"
)

// Defaults for every setting. The dashboard runs with these when no config
// file, environment variable, or flag overrides them.
const (
	DefaultInterval    = time.Second
	DefaultHistorySize = 80
	DefaultPageSize    = 20
	DefaultGraphHeight = 15
	DefaultSource      = SourceProcfs
	DefaultProcRoot    = "/proc"
)

// Config holds the resolved dashboard settings.
type Config struct {
	// Interval is the refresh period between collections.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// HistorySize is the memory history capacity, which is also the graph width in samples.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// PageSize is the number of process rows visible at once.
	PageSize int `yaml:"page_size" mapstructure:"page_size"`

	// GraphHeight is the memory graph height in rows.
	GraphHeight int `yaml:"graph_height" mapstructure:"graph_height"`

	// Source selects the collector backend: "procfs" or "gopsutil".
	Source string `yaml:"source" mapstructure:"source"`

	// ProcRoot is the proc filesystem mount point used by the procfs source.
	ProcRoot string `yaml:"proc_root" mapstructure:"proc_root"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Interval:    DefaultInterval,
		HistorySize: DefaultHistorySize,
		PageSize:    DefaultPageSize,
		GraphHeight: DefaultGraphHeight,
		Source:      DefaultSource,
		ProcRoot:    DefaultProcRoot,
	}
}

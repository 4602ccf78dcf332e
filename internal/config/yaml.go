package config

import (
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/ptop/internal/errors"
)

// fileView is the on-disk shape of Config. Durations are written the way
// users type them ("1s") rather than as nanoseconds.
type fileView struct {
	Interval    string `yaml:"interval"`
	HistorySize int    `yaml:"history_size"`
	PageSize    int    `yaml:"page_size"`
	GraphHeight int    `yaml:"graph_height"`
	Source      string `yaml:"source"`
	ProcRoot    string `yaml:"proc_root"`
}

// Marshal renders cfg as YAML that Load reads back unchanged.
func Marshal(cfg *Config) ([]byte, error) {
	view := fileView{
		Interval:    cfg.Interval.String(),
		HistorySize: cfg.HistorySize,
		PageSize:    cfg.PageSize,
		GraphHeight: cfg.GraphHeight,
		Source:      cfg.Source,
		ProcRoot:    cfg.ProcRoot,
	}

	data, err := yaml.Marshal(&view)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config", "")
	}
	return data, nil
}

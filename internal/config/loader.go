package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for environment overrides (PTOP_INTERVAL, ...).
	EnvPrefix = "PTOP"
	// GlobalConfigDir is the directory for the user config, relative to home.
	GlobalConfigDir = ".config/ptop"
	// GlobalConfigFile is the user config file name.
	GlobalConfigFile = "config.yaml"
)

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"interval":     "interval",
	"history":      "history_size",
	"page-size":    "page_size",
	"graph-height": "graph_height",
	"source":       "source",
	"proc-root":    "proc_root",
}

// Find locates the config file:
// 1. Explicit path (from --config flag), which must exist
// 2. ~/.config/ptop/config.yaml
//
// Returns an empty string if no file is found; that is not an error.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}
	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}

// Load resolves the configuration from, in order of precedence: flags that
// were explicitly set, PTOP_* environment variables, the config file at path
// (if non-empty), and defaults. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML: "+path)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Failed to bind flag --"+name, "")
			}
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		where := "your environment"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+where)
	}
	cfg.Source = strings.ToLower(strings.TrimSpace(cfg.Source))

	return cfg, nil
}

// setDefaults registers defaults so env-only keys are visible to Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", DefaultInterval.String())
	v.SetDefault("history_size", DefaultHistorySize)
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("graph_height", DefaultGraphHeight)
	v.SetDefault("source", DefaultSource)
	v.SetDefault("proc_root", DefaultProcRoot)
}

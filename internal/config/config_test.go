package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, time.Second, cfg.Interval)
	assert.Equal(t, 80, cfg.HistorySize)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 15, cfg.GraphHeight)
	assert.Equal(t, SourceProcfs, cfg.Source)
	assert.Equal(t, "/proc", cfg.ProcRoot)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
interval: 2s
history_size: 120
page_size: 30
source: gopsutil
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, 120, cfg.HistorySize)
	assert.Equal(t, 30, cfg.PageSize)
	assert.Equal(t, DefaultGraphHeight, cfg.GraphHeight)
	assert.Equal(t, SourceGopsutil, cfg.Source)
	assert.Equal(t, DefaultProcRoot, cfg.ProcRoot)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: [unclosed"), 0o644))

	_, err := Load(path, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 30\n"), 0o644))
	t.Setenv("PTOP_PAGE_SIZE", "12")
	t.Setenv("PTOP_PROC_ROOT", "/host/proc")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, "/host/proc", cfg.ProcRoot)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PTOP_INTERVAL", "5s")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Duration("interval", DefaultInterval, "")
	flags.Int("history", DefaultHistorySize, "")
	flags.String("source", DefaultSource, "")
	require.NoError(t, flags.Parse([]string{"--interval=250ms", "--source=GOPSUTIL"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, DefaultHistorySize, cfg.HistorySize)
	assert.Equal(t, SourceGopsutil, cfg.Source)
}

func TestLoad_UnchangedFlagsDoNotOverrideEnv(t *testing.T) {
	t.Setenv("PTOP_HISTORY_SIZE", "40")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("history", DefaultHistorySize, "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.HistorySize)
}

func TestFind(t *testing.T) {
	t.Run("explicit path exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ptop.yaml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		found, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("global config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		require.NoError(t, os.MkdirAll(filepath.Dir(global), 0o755))
		require.NoError(t, os.WriteFile(global, []byte("page_size: 10\n"), 0o644))

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, global, found)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		found, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

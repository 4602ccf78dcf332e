package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/spf13/cobra"
)

// configPath is the --config flag value.
var configPath string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ptop",
		Short: "Terminal process and memory dashboard",
		Long: `ptop samples the host's process table once per interval and shows
a scrollable list sorted by CPU usage, above a bar graph of recent memory use.

Keys:
  ↑/↓  scroll the process list
  q    quit

Examples:
  ptop
  ptop --interval 2s --page-size 40
  PTOP_SOURCE=gopsutil ptop`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dashboardCommand(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.config/ptop/config.yaml)")
	pf.Duration("interval", config.DefaultInterval, "refresh interval (e.g., 1s, 500ms)")
	pf.Int("history", config.DefaultHistorySize, "memory samples kept for the graph")
	pf.Int("page-size", config.DefaultPageSize, "process rows visible at once")
	pf.Int("graph-height", config.DefaultGraphHeight, "memory graph height in rows")
	pf.String("source", config.DefaultSource, "collector backend: procfs or gopsutil")
	pf.String("proc-root", config.DefaultProcRoot, "proc filesystem mount point (procfs source)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves and validates the configuration for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := config.Find(configPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

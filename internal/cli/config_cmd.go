package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/rileyhilliard/ptop/internal/ui"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration ptop would run with, after applying the config
file, PTOP_* environment variables, and flags. The output is valid YAML and
can be saved as ~/.config/ptop/config.yaml.

Examples:
  ptop config
  ptop config --interval 2s > ~/.config/ptop/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path, _ := config.Find(configPath); path != "" {
				mark := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.SymbolSuccess)
				fmt.Fprintf(out, "# %s loaded from %s\n", mark, path)
			}
			_, err = out.Write(data)
			return err
		},
	}
}

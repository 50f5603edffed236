package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-widgets/internal/cli"
	"github.com/pluqqy/pluqqy-widgets/pkg/files"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a .widgets project directory",
		Long: `Creates the .widgets folder in the current directory with default
settings.yaml and slides.yaml files. Existing files are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine current directory: %w", err)
			}

			cli.PrintInfo("Initializing widgets project in %s...", cwd)

			if err := files.InitProjectStructure(); err != nil {
				return fmt.Errorf("failed to initialize project structure: %w", err)
			}

			cli.PrintSuccess("Created %s", files.SettingsPath())
			cli.PrintSuccess("Created %s", files.SlidesPath())
			cli.PrintInfo("Run 'widgets' to start the interactive TUI.")
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"

	"imageviewer/internal/config"
	"imageviewer/internal/logging"
	"imageviewer/internal/ui"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the GUI command. run starts the window and is replaced in tests.
func NewRootCmd(run func(cfg *config.Config, dir string) error) *cobra.Command {
	cfg := config.Default()
	rootCmd := &cobra.Command{
		Use:   "imageviewer [directory]",
		Short: "Browse the pictures of a folder",
		Long: `Shows the pictures of a folder one at a time, scaled to fit the screen.
Use Previous/Next to move through them or Slide Show to advance automatically.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			dir := ""
			if len(args) == 1 {
				info, err := os.Stat(args[0])
				if err != nil {
					return fmt.Errorf("error while opening the directory '%s': %w", args[0], err)
				}
				if !info.IsDir() {
					return fmt.Errorf("'%s' is not a directory", args[0])
				}
				dir = args[0]
			}
			return run(cfg, dir)
		},
	}
	cfg.BindFlags(rootCmd.Flags())
	return rootCmd
}

func main() {
	rootCmd := NewRootCmd(func(cfg *config.Config, dir string) error {
		logger := logging.NewDefault(cfg.LogLevel)
		return ui.CreateApplication(cfg, logger, dir)
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

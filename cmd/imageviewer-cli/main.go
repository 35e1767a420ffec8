package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"imageviewer/internal/config"
	"imageviewer/internal/logging"
	"imageviewer/internal/recent"
	"imageviewer/internal/scan"
	"imageviewer/internal/service"
	"imageviewer/internal/viewer"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// StoreOpener opens the recent folders store. Tests swap it for a temp database.
type StoreOpener func(cfg *config.Config, logger zerolog.Logger) (*recent.Store, error)

func openStore(cfg *config.Config, logger zerolog.Logger) (*recent.Store, error) {
	return recent.Open(cfg.RecentDB, cfg.RecentCapacity, logger)
}

// NewRootCmd creates the root command for the CLI application.
func NewRootCmd(open StoreOpener) *cobra.Command {
	cfg := config.Default()
	logger := zerolog.Nop()

	var rootCmd = &cobra.Command{
		Use:           "imageviewer-cli",
		Short:         "Image viewer CLI - inspect folders without opening a window",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			var err error
			logger, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			return err
		},
	}
	cfg.BindFlags(rootCmd.PersistentFlags())

	// List command
	listCmd := &cobra.Command{
		Use:   "list [directory]",
		Short: "List the pictures the viewer would show for a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := scan.Directory(args[0], cfg.Pattern)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				cmd.Println(viewer.NoPicturesMessage)
				return nil
			}
			for _, item := range items {
				cmd.Printf("%s\t%d\n", item.Path, item.Size)
			}
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	// Fit command
	fitCmd := &cobra.Command{
		Use:   "fit [width] [height]",
		Short: "Print the displayed size of a picture",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid width %q: %w", args[0], err)
			}
			h, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid height %q: %w", args[1], err)
			}
			src := viewer.Size{Width: w, Height: h}
			if src.Empty() {
				return fmt.Errorf("size %s has no pixels", src)
			}
			cmd.Println(viewer.FitLongest(src, cfg.MaxSize()))
			return nil
		},
	}
	rootCmd.AddCommand(fitCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Decode every picture of a folder and report the ones that fail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := scan.Directory(args[0], cfg.Pattern)
			if err != nil {
				return err
			}
			svc := service.NewImageService()
			failed := 0
			for _, item := range items {
				if !scan.IsImage(item.Path) {
					logger.Warn().Str("path", item.Path).Msg("extension is not a known picture type")
				}
				info, _, err := svc.GetImageInfo(item.Path)
				if err != nil {
					failed++
					logger.Warn().Err(err).Str("path", item.Path).Msg("unreadable picture")
					cmd.Printf("FAIL\t%s\t%v\n", filepath.Base(item.Path), err)
					continue
				}
				shown := viewer.FitLongest(viewer.Size{Width: info.Width, Height: info.Height}, cfg.MaxSize())
				line := fmt.Sprintf("OK\t%s\t%s\t%dx%d -> %s", filepath.Base(item.Path), info.Format, info.Width, info.Height, shown)
				if info.Taken != "" {
					line += "\t" + info.Taken
				}
				cmd.Println(line)
			}
			cmd.Printf("%d checked, %d failed\n", len(items), failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d pictures could not be decoded", failed, len(items))
			}
			return nil
		},
	}
	rootCmd.AddCommand(checkCmd)

	// Recent command
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened folders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to open recent folders: %w", err)
			}
			defer store.Close()
			for _, dir := range store.List() {
				cmd.Println(dir)
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget all recently opened folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cfg, logger)
			if err != nil {
				return fmt.Errorf("failed to open recent folders: %w", err)
			}
			defer store.Close()
			if err := store.Clear(); err != nil {
				return err
			}
			cmd.Println("Recent folders cleared.")
			return nil
		},
	}
	recentCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(recentCmd)

	return rootCmd
}

func main() {
	if err := NewRootCmd(openStore).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

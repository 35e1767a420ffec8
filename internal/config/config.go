// Package config holds the runtime settings shared by the viewer binaries.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
)

const (
	// DefaultInterval is the slideshow period.
	DefaultInterval = 3000 * time.Millisecond
	// DefaultScreenHeight is used when the display height is not given on the command line.
	DefaultScreenHeight = 1080
	// DefaultMargin is subtracted from the screen height to get the picture bounding box.
	DefaultMargin = 200
	// DefaultPattern selects the files listed when a folder is opened.
	DefaultPattern = "*.jpg"
	// DefaultRecentCapacity is the number of recently opened folders to remember.
	DefaultRecentCapacity = 10
	// DefaultLogLevel is the zerolog level name used when none is set.
	DefaultLogLevel = "info"
)

// Config holds the settings of a viewer session.
type Config struct {
	Interval       time.Duration
	ScreenHeight   int
	Margin         int
	Pattern        string
	RecentCapacity int
	RecentDB       string // empty means the user config dir
	LogLevel       string
	NativeDialog   bool
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		Interval:       DefaultInterval,
		ScreenHeight:   DefaultScreenHeight,
		Margin:         DefaultMargin,
		Pattern:        DefaultPattern,
		RecentCapacity: DefaultRecentCapacity,
		LogLevel:       DefaultLogLevel,
	}
}

// BindFlags registers the config fields on a flag set, using the current
// values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&c.Interval, "interval", c.Interval, "Slideshow period")
	fs.IntVar(&c.ScreenHeight, "screen-height", c.ScreenHeight, "Display height in pixels used to size pictures")
	fs.IntVar(&c.Margin, "margin", c.Margin, "Pixels kept free below the picture box")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "Case-sensitive glob selecting pictures in a folder")
	fs.IntVar(&c.RecentCapacity, "recent-size", c.RecentCapacity, "Number of recent folders to remember (0 to disable)")
	fs.StringVar(&c.RecentDB, "recent-db", c.RecentDB, "Path of the recent folders database")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&c.NativeDialog, "native-dialog", c.NativeDialog, "Use the operating system folder picker")
}

// MaxSize is the length of the longer side of a displayed picture.
func (c *Config) MaxSize() int {
	return c.ScreenHeight - c.Margin
}

// Validate checks the settings for values the viewer cannot work with.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.ScreenHeight <= 0 {
		return fmt.Errorf("screen height must be positive, got %d", c.ScreenHeight)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", c.Margin)
	}
	if c.MaxSize() <= 0 {
		return fmt.Errorf("margin %d leaves no room on a %dpx screen", c.Margin, c.ScreenHeight)
	}
	if c.Pattern == "" {
		return errors.New("pattern must not be empty")
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", c.Pattern, err)
	}
	if c.RecentCapacity < 0 {
		return fmt.Errorf("recent size must not be negative, got %d", c.RecentCapacity)
	}
	return nil
}

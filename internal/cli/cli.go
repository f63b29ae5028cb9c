// Package cli implements the spritestitch command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spritestitch/internal/config"
	"github.com/matzehuels/spritestitch/pkg/buildinfo"
	"github.com/matzehuels/spritestitch/pkg/cache"
	"github.com/matzehuels/spritestitch/pkg/errors"
	"github.com/matzehuels/spritestitch/pkg/stitch"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "spritestitch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	cfg := config.Default()
	return &CLI{
		Logger: newLogger(w, level),
		Config: &cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Spritestitch packs sprite images into an atlas and back",
		Long:          `Spritestitch packs a directory of sprite images into a single atlas image with JSON metadata, and restores the original sprites from an atlas.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/spritestitch/config.toml)")

	root.AddCommand(c.stitchCommand())
	root.AddCommand(c.unstitchCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// =============================================================================
// Stitcher Factory
// =============================================================================

// newStitcher creates a stitcher for CLI use.
func (c *CLI) newStitcher(noCache bool) *stitch.Stitcher {
	s := stitch.New(c.newCache(noCache), c.Logger)
	s.CacheTTL = c.Config.Cache.TTL.Duration
	return s
}

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache || !c.Config.Cache.Enabled {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("layout cache disabled", "error", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/spritestitch/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// unstitchedDir returns the default extraction directory for an atlas.
func unstitchedDir(atlasPath, name string) string {
	return filepath.Join(filepath.Dir(atlasPath), name)
}

// ReportError prints err for the user. Coded errors show their code and
// category so scripts and bug reports can tell failures apart.
func ReportError(err error) {
	code := errors.GetCode(err)
	if code == "" {
		printError("%v", err)
		return
	}
	printError("%s", errors.UserMessage(err))
	printDetail("%s (%s error)", code, code.Category())
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spritestitch/pkg/codec"
	"github.com/matzehuels/spritestitch/pkg/stitch"
)

// stitchFlags holds flag values for the stitch command.
type stitchFlags struct {
	padding     int
	maxWidth    int
	name        string
	output      string
	logicalPath string
	recursive   bool
	extensions  []string
	compression string
	noCache     bool
	refresh     bool
}

// stitchCommand creates the stitch command for packing a directory into an atlas.
func (c *CLI) stitchCommand() *cobra.Command {
	var flags stitchFlags

	cmd := &cobra.Command{
		Use:   "stitch <dir>",
		Short: "Pack a directory of sprites into an atlas",
		Long: `Pack every sprite image in a directory into one atlas image.

The atlas is written as PNG next to a JSON file of the same name that records
each sprite's rectangle. Use "spritestitch unstitch" to restore the sprites.`,
		Example: `  # Pack ./icons into ./icons/stitched/atlas.png
  spritestitch stitch ./icons

  # Tighter packing into a narrower atlas
  spritestitch stitch ./icons -p 0 -w 1024 -n ui.png

  # Record an engine path instead of the file path
  spritestitch stitch ./icons --logical-path res://ui/atlas.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStitch(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVarP(&flags.padding, "padding", "p", stitch.DefaultPadding, "transparent pixels between sprites")
	cmd.Flags().IntVarP(&flags.maxWidth, "max-width", "w", stitch.DefaultMaxWidth, "maximum atlas width in pixels")
	cmd.Flags().StringVarP(&flags.name, "name", "n", stitch.DefaultAtlasName, "atlas file name (must end in .png)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory (default <dir>/stitched)")
	cmd.Flags().StringVar(&flags.logicalPath, "logical-path", "", "image path to record in the metadata instead of the file path")
	cmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "include sprites in subdirectories")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "image extensions to include (default png)")
	cmd.Flags().StringVar(&flags.compression, "compression", "", "PNG compression: default, none, speed, best")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute the layout even if it is cached")

	return cmd
}

// stitchOptions merges configuration defaults with explicitly set flags.
func (c *CLI) stitchOptions(cmd *cobra.Command, dir string, flags stitchFlags) (stitch.Options, stitch.ScanOptions) {
	cfg := c.Config
	changed := cmd.Flags().Changed

	opts := stitch.Options{
		Padding:     cfg.Padding,
		MaxWidth:    cfg.MaxWidth,
		OutputDir:   filepath.Join(dir, cfg.StitchedDir),
		AtlasName:   flags.name,
		LogicalPath: flags.logicalPath,
		Compression: cfg.Compression,
		Refresh:     flags.refresh,
	}
	if changed("padding") {
		opts.Padding = flags.padding
	}
	if changed("max-width") {
		opts.MaxWidth = flags.maxWidth
	}
	if flags.output != "" {
		opts.OutputDir = flags.output
	}
	if flags.compression != "" {
		opts.Compression = codec.Compression(flags.compression)
	}

	scan := stitch.ScanOptions{
		Recursive:  cfg.Recursive || flags.recursive,
		Extensions: cfg.Extensions,
		Exclude:    opts.OutputPaths(),
	}
	if changed("ext") {
		scan.Extensions = flags.extensions
	}
	return opts, scan
}

func (c *CLI) runStitch(cmd *cobra.Command, dir string, flags stitchFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	opts, scanOpts := c.stitchOptions(cmd, dir, flags)
	s := c.newStitcher(flags.noCache)

	sprites, err := s.LoadSprites(ctx, dir, scanOpts)
	if err != nil {
		return err
	}

	res, err := s.Stitch(ctx, sprites, opts)
	if err != nil {
		return err
	}

	spin := newSpinner(ctx, os.Stderr, "Writing atlas...")
	spin.Start()
	err = s.Write(ctx, res)
	spin.Stop()
	if err != nil {
		return err
	}

	printSuccess("Stitched %d sprites", len(sprites))
	printAtlasStats(res.Width(), res.Height(), len(sprites), res.Utilization, res.CacheHit)
	printFile(res.AtlasPath)
	printFile(res.MetadataPath)
	if opts.LogicalPath != "" {
		printKeyValue("image ref", res.Metadata.Image)
	}
	printNextStep("Restore the sprites", fmt.Sprintf("%s unstitch %s", appName, res.AtlasPath))

	prog.done("stitch finished", "sprites", len(sprites))
	return nil
}

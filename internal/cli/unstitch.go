package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/spritestitch/pkg/codec"
	"github.com/matzehuels/spritestitch/pkg/errors"
	"github.com/matzehuels/spritestitch/pkg/stitch"
)

// unstitchFlags holds flag values for the unstitch command.
type unstitchFlags struct {
	output      string
	compression string
	yes         bool
	keep        bool
}

// unstitchCommand creates the unstitch command for restoring sprites from an atlas.
func (c *CLI) unstitchCommand() *cobra.Command {
	var flags unstitchFlags

	cmd := &cobra.Command{
		Use:   "unstitch <atlas.png>",
		Short: "Restore the sprites of an atlas",
		Long: `Restore every sprite of an atlas under its original file name.

The metadata is read from the JSON file next to the atlas. After all sprites
are written you are asked whether to delete the original atlas and metadata;
--yes deletes without asking and --keep never deletes.`,
		Example: `  # Extract into ./icons/stitched/unstitched
  spritestitch unstitch ./icons/stitched/atlas.png

  # Extract elsewhere and remove the atlas afterwards
  spritestitch unstitch ./icons/stitched/atlas.png -o ./icons --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUnstitch(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory (default <atlas dir>/unstitched)")
	cmd.Flags().StringVar(&flags.compression, "compression", "", "PNG compression: default, none, speed, best")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "delete the original atlas without asking")
	cmd.Flags().BoolVar(&flags.keep, "keep", false, "keep the original atlas without asking")
	cmd.MarkFlagsMutuallyExclusive("yes", "keep")

	return cmd
}

func (c *CLI) runUnstitch(cmd *cobra.Command, atlasPath string, flags unstitchFlags) error {
	ctx := cmd.Context()
	prog := newProgress(loggerFromContext(ctx))

	opts := stitch.UnstitchOptions{
		AtlasPath:   atlasPath,
		OutputDir:   flags.output,
		Compression: c.Config.Compression,
	}
	if opts.OutputDir == "" {
		opts.OutputDir = unstitchedDir(atlasPath, c.Config.UnstitchedDir)
	}
	if flags.compression != "" {
		opts.Compression = codec.Compression(flags.compression)
	}

	s := c.newStitcher(true)
	res, err := s.Unstitch(ctx, opts)
	if err != nil {
		return err
	}

	printSuccess("Extracted %d of %d sprites", len(res.Written), len(res.Metadata.Sprites))
	printDetail("Directory: %s", res.OutputDir)
	for _, f := range res.Failed {
		printWarning("%s: %s", f.Name, errors.UserMessage(f.Err))
	}
	prog.done("unstitch finished", "written", len(res.Written), "failed", len(res.Failed))

	if len(res.Failed) > 0 {
		printWarning("Keeping the original atlas because %d sprites could not be extracted", len(res.Failed))
		return nil
	}

	deleted, err := s.DeleteOriginals(ctx, atlasPath, confirmerFor(flags.yes, flags.keep))
	if err != nil {
		printWarning("Could not delete the original atlas: %s", errors.UserMessage(err))
		return nil
	}
	if deleted {
		printInfo("Deleted the original atlas and metadata")
	}
	return nil
}

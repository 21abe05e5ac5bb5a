package cmd

import "image"

import "github.com/spf13/cobra"
import "github.com/sirupsen/logrus"

import "github.com/askier/atlas/view"
import "github.com/askier/atlas/internal/watch"

func newShowCmd(opts *options) *cobra.Command {
	var scale int
	var watchFile bool
	cmd := &cobra.Command{
		Use: "show [char]",
		Short: "Display the pixel map of a glyph (default 'g')",
		Long: "Opens a window with the pixel map of the given character, upscaled\n" +
			"for inspection. Press any key to close it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseChar(args)
			if err != nil { return err }
			source, err := opts.loadAtlas()
			if err != nil { return err }
			glyph, err := source.Glyph(r)
			if err != nil { return err }

			viewOpts := view.Options{
				Scale: resolveScale(scale, opts.config.Scale),
				Mapper: optionalMapper(source),
				Output: cmd.OutOrStdout(),
			}
			if watchFile {
				updates := make(chan *image.Gray, 1)
				watcher, err := watch.New(opts.path(), func(path string) {
					img, err := opts.reloadGlyph(r)
					if err != nil {
						logrus.WithError(err).WithField("path", path).Warn("atlas reload failed")
						return
					}
					sendLatest(updates, img)
				})
				if err != nil { return err }
				defer watcher.Stop()
				viewOpts.Updates = updates
			}
			return view.ShowGlyph(cmd.Context(), glyph, viewOpts)
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 0, "window upscale factor (default $ASKIER_SCALE or 24)")
	cmd.Flags().BoolVar(&watchFile, "watch", false, "reload the glyph when the atlas file changes")
	return cmd
}

// Returns the --scale flag value if set, or the configured scale.
func resolveScale(flag int, configured int) int {
	if flag > 0 { return flag }
	return configured
}

// Sends img on a channel with a buffer of one, replacing the pending
// image if the receiver hasn't taken it yet. Never blocks.
func sendLatest(updates chan *image.Gray, img *image.Gray) {
	select {
	case <-updates:
	default:
	}
	select {
	case updates <- img:
	default: // a concurrent reload refilled the buffer
	}
}

func (self *options) reloadGlyph(r rune) (*image.Gray, error) {
	source, err := self.loadAtlas()
	if err != nil { return nil, err }
	glyph, err := source.Glyph(r)
	if err != nil { return nil, err }
	logrus.WithField("glyph", glyph.String()).Debug("glyph reloaded")
	return glyph.Gray(), nil
}

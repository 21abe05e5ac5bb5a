package cmd

import "fmt"
import "path/filepath"

import "github.com/spf13/cobra"

import "github.com/askier/atlas"
import "github.com/askier/atlas/font"
import "github.com/askier/atlas/calibrate"

func newCalibrateCmd(opts *options) *cobra.Command {
	var size int
	var out string
	var pixmaps bool
	cmd := &cobra.Command{
		Use: "calibrate [font.ttf]",
		Short: "Generate an atlas from a font (default Go Mono)",
		Long: "Renders the printable ASCII characters of the font and sorts them\n" +
			"by ink density. Without --out, the atlas is stored in the askier\n" +
			"data dir, reusing a previous calibration when one is found.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fontPath := ""
			if len(args) > 0 { fontPath = args[0] }
			fnt, name, err := font.Open(fontPath)
			if err != nil { return err }

			calibrator := calibrate.New(fnt, size)
			var result *atlas.Atlas
			path := out
			if out == "" {
				result, path, err = calibrate.EnsureCalibrated(opts.config.DataDir, fnt, calibrator.Size())
				if err != nil { return err }
			} else {
				result, err = calibrator.Calibrate()
				if err != nil { return err }
				err = result.Save(out)
				if err != nil { return err }
			}

			width, height := result.CellSize()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d glyphs, %dx%d cells -> %s\n",
				name, result.NumGlyphs(), width, height, path)
			if err != nil || !pixmaps { return err }

			key := font.Key(fnt, calibrator.Size())
			written, err := calibrate.SavePixmaps(result, filepath.Dir(path), key)
			if err != nil { return err }
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d glyph pixmaps -> %s\n",
				len(written), filepath.Join(filepath.Dir(path), "pixmaps"))
			return err
		},
	}
	cmd.Flags().IntVar(&size, "size", calibrate.DefaultSize, "font size in pixels")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the atlas to this path instead of the data dir")
	cmd.Flags().BoolVar(&pixmaps, "pixmaps", false, "also write each glyph as a PNG under <atlas dir>/pixmaps")
	return cmd
}

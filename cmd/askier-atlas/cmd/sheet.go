package cmd

import "os"
import "fmt"
import "image"
import "image/png"

import "github.com/spf13/cobra"

import "github.com/askier/atlas"
import "github.com/askier/atlas/view"

func newSheetCmd(opts *options) *cobra.Command {
	var out string
	var scale int
	cmd := &cobra.Command{
		Use: "sheet",
		Short: "Tile all the atlas glyphs into a single image",
		Long: "Tiles every glyph of the atlas into a grid on a gray background.\n" +
			"The sheet is shown in a window, or written as PNG with --out.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := opts.loadAtlas()
			if err != nil { return err }
			sheet, err := atlas.Sheet(source, atlas.SheetBackground)
			if err != nil { return err }

			if out == "" {
				viewOpts := view.Options{
					Title: "askier-atlas: sheet",
					Scale: scale,
					Mapper: optionalMapper(source),
				}
				if viewOpts.Scale <= 0 { viewOpts.Scale = opts.config.Scale }
				return view.Show(cmd.Context(), sheet, viewOpts)
			}

			err = writePNG(out, atlas.Upscale(sheet, max(scale, 1)))
			if err != nil { return err }
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the sheet as PNG to this path")
	cmd.Flags().IntVar(&scale, "scale", 0, "upscale factor (PNG default 1, window default $ASKIER_SCALE)")
	return cmd
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil { return err }
	err = png.Encode(file, img)
	if err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

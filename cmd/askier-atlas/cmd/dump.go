package cmd

import "github.com/spf13/cobra"

import "github.com/askier/atlas"
import "github.com/askier/atlas/dump"

func newDumpCmd(opts *options) *cobra.Command {
	var shade bool
	cmd := &cobra.Command{
		Use: "dump [char]",
		Short: "Print the pixel map of a glyph as numbers (default 'g')",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseChar(args)
			if err != nil { return err }
			source, err := opts.loadAtlas()
			if err != nil { return err }
			glyph, err := source.Glyph(r)
			if err != nil { return err }

			printer := dump.NewPrinter(cmd.OutOrStdout())
			err = printer.Header(glyph)
			if err != nil { return err }
			err = printer.Rows(glyph)
			if err != nil || !shade { return err }

			mapper, err := atlas.NewMapper(source)
			if err != nil { return err }
			return printer.Shade(glyph, mapper)
		},
	}
	cmd.Flags().BoolVar(&shade, "shade", false, "also print the glyph shaded with the atlas characters")
	return cmd
}

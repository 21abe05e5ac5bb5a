package cmd

import "io"
import "fmt"

import "github.com/spf13/cobra"

import "github.com/askier/atlas"

// Number of LUT characters shown on each end.
const lutPreviewLen = 12

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use: "info",
		Short: "Validate an atlas and print a summary",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := opts.loadAtlas()
			if err != nil { return err }
			err = source.Validate()
			if err != nil { return err }
			return printInfo(cmd.OutOrStdout(), opts.path(), source)
		},
	}
}

func printInfo(w io.Writer, path string, source *atlas.Atlas) error {
	order := source.Order
	if order == "" { order = atlas.OrderCodepoint }
	cell := "non-uniform"
	if source.Uniform() {
		width, height := source.CellSize()
		cell = fmt.Sprintf("%dx%d", width, height)
	}

	_, err := fmt.Fprintf(w,
		"atlas:   %s\nglyphs:  %d\nsamples: %d\ncell:    %s\naspect:  %.3f\norder:   %s\n",
		path, source.NumGlyphs(), len(source.Pixmap), cell, source.CellAspect(), order)
	if err != nil { return err }

	_, err = fmt.Fprintf(w, "lut:     %s\n", lutPreview(source.LUT))
	return err
}

// Returns the lightest and darkest ends of the LUT, like " .'`^ ... #MW@".
func lutPreview(lut []int) string {
	if len(lut) == 0 { return "(none)" }
	chars := make([]byte, len(lut))
	for i, code := range lut { chars[i] = byte(code) }
	if len(chars) <= 2*lutPreviewLen { return fmt.Sprintf("%q", chars) }
	return fmt.Sprintf("%q ... %q (%d entries)", chars[: lutPreviewLen], chars[len(chars) - lutPreviewLen :], len(chars))
}

// The view subpackage shows atlas images for visual inspection.
//
// By default images are shown in an Ebitengine window, upscaled with
// nearest neighbour filtering so each sample can be told apart. When
// built with the "headless" tag, images are printed to the terminal
// as shaded text instead.
package view

import "io"
import "fmt"
import "image"
import "context"
import "strings"

import "github.com/askier/atlas"

// Upscale factor used when [Options].Scale is not positive.
const DefaultScale = 24

// Windows are never made bigger than this in either dimension; the
// scale is reduced when necessary.
const MaxWindowSide = 2048

type Options struct {
	// Window title.
	Title string

	// Integer upscaling factor. Zero or negative means [DefaultScale].
	Scale int

	// Optional source of replacement images. When a new image is
	// received, it replaces the one being shown. A nil image or
	// closing the channel is ignored.
	Updates <-chan *image.Gray

	// Mapper for headless text output. If nil, a fixed luminance
	// ramp is used.
	Mapper *atlas.Mapper

	// Destination of headless text output. Nil means standard output.
	Output io.Writer
}

// Returns the scale to use for an image of the given size, so that
// the upscaled image fits within [MaxWindowSide]. The result is never
// below 1.
func FitScale(width, height, scale int) int {
	if scale <= 0 { scale = DefaultScale }
	side := max(width, height, 1)
	if side*scale > MaxWindowSide { scale = MaxWindowSide/side }
	return max(scale, 1)
}

// Returns the window title for the given glyph.
func Title(glyph *atlas.Glyph) string {
	return fmt.Sprintf("askier-atlas: %q (index %d, %dx%d)", glyph.Rune, glyph.Index, glyph.Width, glyph.Height)
}

// Shows the image of the given glyph. See [Show]().
func ShowGlyph(ctx context.Context, glyph *atlas.Glyph, opts Options) error {
	if opts.Title == "" { opts.Title = Title(glyph) }
	return Show(ctx, glyph.Gray(), opts)
}

// Fallback ramp for headless output, from dark to light.
const defaultRamp = "@%#*+=-:. "

func shadeChar(level uint8, mapper *atlas.Mapper) byte {
	if mapper != nil { return mapper.MapGray(level) }
	index := int(level)*(len(defaultRamp) - 1)/255
	return defaultRamp[index]
}

// Returns the image as shaded text, one character per sample and
// one line per row. Lines are cut to maxWidth characters when
// maxWidth is positive.
func Text(img *image.Gray, mapper *atlas.Mapper, maxWidth int) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	if maxWidth > 0 && width > maxWidth { width = maxWidth }

	var builder strings.Builder
	builder.Grow((width + 1)*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Min.X + width; x++ {
			builder.WriteByte(shadeChar(img.GrayAt(x, y).Y, mapper))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

package calibrate

import "fmt"
import "cmp"
import "errors"
import "slices"
import "strings"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"
import xfont "golang.org/x/image/font"
import "github.com/sirupsen/logrus"

import "github.com/askier/atlas"
import "github.com/askier/atlas/font"

// Size used when the given size is not positive.
const DefaultSize = 12

// Cells are never smaller than this in either dimension.
const MinCellSize = 10

// Returned by [Calibrator.Calibrate]() when the font can't render some
// printable ASCII character. Such characters would be drawn as the
// font's .notdef box.
var ErrMissingGlyphs = errors.New("font lacks printable ASCII glyphs")

// A Calibrator renders the printable ASCII glyphs of a font at a
// specific size and builds an atlas out of them.
//
// Calibrators can't be used concurrently.
type Calibrator struct {
	font *sfnt.Font
	size int // in pixels per em
	buffer sfnt.Buffer
	rasterizer cellRasterizer
}

// Creates a calibrator for the given font and size in pixels.
// Sizes <= 0 are replaced by [DefaultSize].
func New(font *sfnt.Font, size int) *Calibrator {
	if font == nil { panic("nil font") }
	if size <= 0 { size = DefaultSize }
	return &Calibrator{ font: font, size: size }
}

// Returns the calibration size in pixels.
func (self *Calibrator) Size() int { return self.size }

// A cell layout: dimensions and the baseline position within the cell.
type Layout struct {
	Width  int
	Height int
	Baseline int // y coordinate of the baseline, from the cell top
}

// Computes the cell layout: the width is the advance of 'M', the
// height is the font line height, both with a minimum of [MinCellSize].
// The baseline is placed at height - descent, clamped to the cell.
func (self *Calibrator) Layout() (Layout, error) {
	ppem := fixed.I(self.size)
	metrics, err := self.font.Metrics(&self.buffer, ppem, xfont.HintingNone)
	if err != nil { return Layout{}, err }

	index, err := self.font.GlyphIndex(&self.buffer, 'M')
	if err != nil { return Layout{}, err }
	advance, err := self.font.GlyphAdvance(&self.buffer, index, ppem, xfont.HintingNone)
	if err != nil { return Layout{}, err }

	layout := Layout{
		Width:  max(MinCellSize, advance.Round()),
		Height: max(MinCellSize, metrics.Height.Ceil()),
	}
	layout.Baseline = min(max(layout.Height - metrics.Descent.Ceil(), 0), layout.Height)
	return layout, nil
}

// Renders a single character into a cell with the given layout and
// returns its grayscale samples (255 = white background, 0 = full ink).
func (self *Calibrator) RenderCell(r rune, layout Layout) ([]uint8, error) {
	ppem := fixed.I(self.size)
	index, err := self.font.GlyphIndex(&self.buffer, r)
	if err != nil { return nil, err }
	outline, err := self.font.LoadGlyph(&self.buffer, index, ppem, nil)
	if err != nil { return nil, fmt.Errorf("%q: %w", r, err) }

	origin := fixed.P(0, layout.Baseline)
	mask := self.rasterizer.Rasterize(outline, origin, layout.Width, layout.Height)
	gray := make([]uint8, len(mask.Pix))
	for i, alpha := range mask.Pix {
		gray[i] = 255 - alpha
	}
	return gray, nil
}

// Returns the normalized ink coverage of a cell: the mean of
// 1 - gray/255 over all its samples.
func Density(gray []uint8) float64 {
	if len(gray) == 0 { return 0 }
	var sum float64
	for _, level := range gray {
		sum += 1.0 - float64(level)/255.0
	}
	return sum/float64(len(gray))
}

type glyphDensity struct {
	code    rune
	density float64
}

// Renders every printable ASCII character and returns the resulting
// atlas. Pixel maps are stored in code point order and the LUT lists
// the characters from lightest to darkest (ties keep code point order).
func (self *Calibrator) Calibrate() (*atlas.Atlas, error) {
	err := checkCoverage(self.font, printableASCII())
	if err != nil { return nil, err }
	layout, err := self.Layout()
	if err != nil { return nil, err }

	area := layout.Width*layout.Height
	result := &atlas.Atlas{
		Pixmap:  make([]float64, 0, atlas.ASCIICount*area),
		Heights: make([]int, 0, atlas.ASCIICount),
		Widths:  make([]int, 0, atlas.ASCIICount),
		LUT:     make([]int, 0, atlas.ASCIICount),
		Aspect:  float64(layout.Height)/float64(layout.Width),
		Order:   atlas.OrderCodepoint,
	}

	densities := make([]glyphDensity, 0, atlas.ASCIICount)
	for code := atlas.FirstRune; code <= atlas.LastRune; code++ {
		gray, err := self.RenderCell(code, layout)
		if err != nil { return nil, err }
		for _, level := range gray {
			result.Pixmap = append(result.Pixmap, float64(level))
		}
		result.Heights = append(result.Heights, layout.Height)
		result.Widths  = append(result.Widths, layout.Width)
		densities = append(densities, glyphDensity{ code, Density(gray) })
	}

	slices.SortStableFunc(densities, func(a, b glyphDensity) int {
		return cmp.Compare(a.density, b.density)
	})
	for _, entry := range densities {
		result.LUT = append(result.LUT, int(entry.code))
	}

	logrus.WithFields(logrus.Fields{
		"size": self.size,
		"cell": fmt.Sprintf("%dx%d", layout.Width, layout.Height),
		"lightest": string(densities[0].code),
		"darkest": string(densities[len(densities) - 1].code),
	}).Debug("calibration complete")
	return result, nil
}

// Fails with [ErrMissingGlyphs] if the font has no glyph for some of
// the runes in text.
func checkCoverage(fnt *sfnt.Font, text string) error {
	missing, err := font.GetMissingRunes(fnt, text)
	if err != nil { return err }
	if len(missing) > 0 {
		return fmt.Errorf("%w: %q", ErrMissingGlyphs, string(missing))
	}
	return nil
}

func printableASCII() string {
	var builder strings.Builder
	for code := atlas.FirstRune; code <= atlas.LastRune; code++ {
		builder.WriteRune(code)
	}
	return builder.String()
}

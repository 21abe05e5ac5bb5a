package atlas

import "fmt"
import "image"

// A Glyph is a view over the pixel map of a single character
// within an [Atlas].
type Glyph struct {
	Rune    rune
	Index   int // position of the pixel map within the atlas
	Offset  int // sample offset of the pixel map within the atlas
	Width   int
	Height  int
	Samples []float64 // row-major, aliases the atlas pixmap
}

// Returns the glyph index for the given character.
//
// In code point order (the default), the index is r - 32. Characters
// below the space are rejected with [ErrBelowSpace] instead of wrapping
// around, and indices beyond the last glyph with [ErrOutOfRange].
//
// If the atlas pixmaps are stored in LUT order, the index is the
// position of the character within the LUT.
func (self *Atlas) IndexOf(r rune) (int, error) {
	if r < FirstRune {
		return -1, fmt.Errorf("%w: %U", ErrBelowSpace, r)
	}

	if self.Order == OrderLUT {
		for i, code := range self.LUT {
			if rune(code) != r { continue }
			if i >= self.NumGlyphs() { break }
			return i, nil
		}
		return -1, fmt.Errorf("%w: %q", ErrNotInLUT, r)
	}

	index := int(r - FirstRune)
	if index >= self.NumGlyphs() {
		return -1, fmt.Errorf("%w: %q is index %d, atlas has %d glyphs", ErrOutOfRange, r, index, self.NumGlyphs())
	}
	return index, nil
}

// Returns the glyph for the given character. See [Atlas.IndexOf]()
// for the indexing rules.
func (self *Atlas) Glyph(r rune) (*Glyph, error) {
	index, err := self.IndexOf(r)
	if err != nil { return nil, err }
	glyph, err := self.GlyphAt(index)
	if err != nil { return nil, err }
	glyph.Rune = r
	return glyph, nil
}

// Returns the glyph at the given atlas index. The glyph rune is
// derived from the index and the atlas order.
func (self *Atlas) GlyphAt(index int) (*Glyph, error) {
	samples, err := self.Samples(index)
	if err != nil { return nil, err }
	offset, _ := self.Offset(index) // already checked by Samples()

	return &Glyph{
		Rune: self.runeAt(index),
		Index: index,
		Offset: offset,
		Width: self.Widths[index],
		Height: self.Heights[index],
		Samples: samples,
	}, nil
}

func (self *Atlas) runeAt(index int) rune {
	if self.Order == OrderLUT && index < len(self.LUT) {
		return rune(self.LUT[index])
	}
	return FirstRune + rune(index)
}

// Returns the glyph samples as a Height x Width grid. The grid rows
// alias the atlas pixmap.
func (self *Glyph) Grid() [][]float64 {
	grid, err := Reshape(self.Samples, self.Height, self.Width)
	if err != nil { panic(err) } // Samples length is checked on creation
	return grid
}

// Returns the glyph as a grayscale image, with each sample converted
// through [ToUint8]().
func (self *Glyph) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, self.Width, self.Height))
	for i, sample := range self.Samples {
		img.Pix[i] = ToUint8(sample)
	}
	return img
}

// Returns a short human readable label, like 'g' #71 12x12.
func (self *Glyph) String() string {
	return fmt.Sprintf("%q #%d %dx%d", self.Rune, self.Index, self.Width, self.Height)
}

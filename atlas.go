package atlas

import "errors"
import "fmt"

// Glyph index 0 corresponds to the space character.
const FirstRune rune = 32

// Last printable ASCII character ('~').
const LastRune rune = 126

// Number of glyphs in a complete askier atlas (32..126).
const ASCIICount = int(LastRune - FirstRune) + 1

// Version of the askier data format that atlases written by this
// package declare in their file names.
const FormatVersion = "0.0.3"

// Values for [Atlas].Order.
const (
	OrderCodepoint = "codepoint" // pixmaps stored from ' ' to '~' (default)
	OrderLUT       = "lut"       // pixmaps stored in LUT order (light to dark)
)

var (
	ErrMissingKey   = errors.New("atlas key missing")
	ErrBelowSpace   = errors.New("code point below space (32)")
	ErrOutOfRange   = errors.New("glyph index out of atlas range")
	ErrNotInLUT     = errors.New("character not present in the atlas LUT")
	ErrShortPixmap  = errors.New("pixmap too short for glyph")
	ErrBadShape     = errors.New("sample count doesn't match grid shape")
	ErrInconsistent = errors.New("inconsistent glyph cell dimensions")
)

// An Atlas is the in-memory representation of an askier glyph
// lookup table. Atlases are read-only once loaded; none of the
// package functions modify them.
//
// The field tags match the keys written by the askier calibrator.
type Atlas struct {
	Pixmap  []float64 `json:"pixmap"`
	Heights []int     `json:"pixmap_heights"`
	Widths  []int     `json:"pixmap_widths"`

	// Optional fields. LUT holds character codes ordered from the
	// lightest to the darkest glyph. Aspect is the cell height divided
	// by the cell width.
	LUT    []int   `json:"lut,omitempty"`
	Aspect float64 `json:"aspect,omitempty"`
	Order  string  `json:"pixmap_order,omitempty"`
}

// Returns the number of glyphs described by the atlas dimensions.
func (self *Atlas) NumGlyphs() int {
	if len(self.Heights) < len(self.Widths) { return len(self.Heights) }
	return len(self.Widths)
}

// Returns whether all the glyph cells share the same dimensions.
// An atlas without glyphs is considered uniform.
func (self *Atlas) Uniform() bool {
	n := self.NumGlyphs()
	for i := 1; i < n; i++ {
		if self.Heights[i] != self.Heights[0] { return false }
		if self.Widths[i]  != self.Widths[0]  { return false }
	}
	return true
}

// Returns the dimensions of the first glyph cell, which are the
// dimensions of every cell when [Atlas.Uniform]() is true.
func (self *Atlas) CellSize() (width, height int) {
	if self.NumGlyphs() == 0 { return 0, 0 }
	return self.Widths[0], self.Heights[0]
}

// Returns the cell aspect ratio (height / width). When the atlas
// doesn't declare one, it's derived from the cell size, with a
// fallback of 2.0 as askier does.
func (self *Atlas) CellAspect() float64 {
	if self.Aspect > 0 { return self.Aspect }
	w, h := self.CellSize()
	if w > 0 && h > 0 { return float64(h)/float64(w) }
	return 2.0
}

// Checks the atlas structural invariants: matching dimension lists,
// positive cell sizes and a pixmap length equal to the sum of all
// cell areas. The LUT, if present, must only contain printable ASCII.
func (self *Atlas) Validate() error {
	if len(self.Heights) != len(self.Widths) {
		return fmt.Errorf("%w: %d heights, %d widths", ErrInconsistent, len(self.Heights), len(self.Widths))
	}

	total := 0
	for i := range self.Heights {
		h, w := self.Heights[i], self.Widths[i]
		if h <= 0 || w <= 0 {
			return fmt.Errorf("%w: glyph %d has size %dx%d", ErrInconsistent, i, w, h)
		}
		if !cellFits(h, w, len(self.Pixmap) - total) {
			return fmt.Errorf("%w: glyph %d ends past the %d pixmap samples", ErrShortPixmap, i, len(self.Pixmap))
		}
		total += h*w
	}
	if total != len(self.Pixmap) {
		return fmt.Errorf("%w: expected %d samples, got %d", ErrShortPixmap, total, len(self.Pixmap))
	}

	for i, code := range self.LUT {
		if code < int(FirstRune) || code > int(LastRune) {
			return fmt.Errorf("lut[%d] = %d is not printable ASCII", i, code)
		}
	}

	switch self.Order {
	case "", OrderCodepoint:
		// ok
	case OrderLUT:
		if len(self.LUT) < self.NumGlyphs() {
			return fmt.Errorf("%w: %q order requires %d LUT entries", ErrNotInLUT, OrderLUT, self.NumGlyphs())
		}
	default:
		return fmt.Errorf("unknown pixmap order %q", self.Order)
	}
	return nil
}

// Returns the sample offset of the glyph at the given index.
//
// Offsets are computed cumulatively from the per-glyph dimensions, so
// atlases with cells of different sizes are also addressed correctly.
// For uniform atlases the result is index*width*height.
func (self *Atlas) Offset(index int) (int, error) {
	if index < 0 || index >= self.NumGlyphs() {
		return 0, fmt.Errorf("%w: index %d, %d glyphs", ErrOutOfRange, index, self.NumGlyphs())
	}
	offset := 0
	for i := 0; i < index; i++ {
		h, w := self.Heights[i], self.Widths[i]
		if h <= 0 || w <= 0 {
			return 0, fmt.Errorf("%w: glyph %d has size %dx%d", ErrInconsistent, i, w, h)
		}
		if !cellFits(h, w, len(self.Pixmap) - offset) {
			return 0, fmt.Errorf("%w: glyph %d ends past the %d pixmap samples", ErrShortPixmap, i, len(self.Pixmap))
		}
		offset += h*w
	}
	return offset, nil
}

// Whether a h x w cell fits in the given number of samples. The
// product is never computed, so huge dimensions can't overflow.
func cellFits(h, w, available int) bool {
	if h <= 0 || w <= 0 || available <= 0 { return false }
	return w <= available/h
}

// Returns the raw samples of the glyph at the given index. The returned
// slice aliases the atlas pixmap and must not be modified.
func (self *Atlas) Samples(index int) ([]float64, error) {
	offset, err := self.Offset(index)
	if err != nil { return nil, err }
	h, w := self.Heights[index], self.Widths[index]
	if !cellFits(h, w, len(self.Pixmap) - offset) {
		return nil, fmt.Errorf("%w: glyph %d (%dx%d) at offset %d, pixmap has %d samples",
			ErrShortPixmap, index, w, h, offset, len(self.Pixmap))
	}
	end := offset + h*w
	return self.Pixmap[offset : end : end], nil
}

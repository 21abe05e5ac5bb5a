package atlas

import "fmt"
import "math"
import "image"

// Default background level for [Sheet]().
const SheetBackground uint8 = 127

// Returns the dimensions, in cells, of the grid used by [Sheet]()
// to lay out the given number of glyphs: rows = floor(sqrt(n)),
// cols = ceil(n/rows).
func SheetGrid(numGlyphs int) (cols, rows int) {
	if numGlyphs <= 0 { return 0, 0 }
	rows = int(math.Sqrt(float64(numGlyphs)))
	if rows < 1 { rows = 1 }
	cols = (numGlyphs + rows - 1)/rows
	return cols, rows
}

// Tiles all the atlas glyphs in storage order, left to right and top
// to bottom, on a grayscale image filled with the given background
// level. The atlas must have uniform cells.
func Sheet(atlas *Atlas, background uint8) (*image.Gray, error) {
	if !atlas.Uniform() {
		return nil, fmt.Errorf("%w: contact sheets require uniform cells", ErrInconsistent)
	}
	numGlyphs := atlas.NumGlyphs()
	if numGlyphs == 0 {
		return nil, fmt.Errorf("%w: atlas has no glyphs", ErrInconsistent)
	}
	// uniform cells: if the first one fits the pixmap, so do the
	// sheet dimensions
	_, err := atlas.Samples(0)
	if err != nil { return nil, err }
	cellW, cellH := atlas.CellSize()
	cols, rows := SheetGrid(numGlyphs)

	sheet := image.NewGray(image.Rect(0, 0, cols*cellW, rows*cellH))
	for i := range sheet.Pix { sheet.Pix[i] = background }

	for index := 0; index < numGlyphs; index++ {
		glyph, err := atlas.GlyphAt(index)
		if err != nil { return nil, err }
		ox := (index % cols)*cellW
		oy := (index / cols)*cellH
		for row := 0; row < cellH; row++ {
			start := sheet.PixOffset(ox, oy + row)
			samples := glyph.Samples[row*cellW : (row + 1)*cellW]
			for col, sample := range samples {
				sheet.Pix[start + col] = ToUint8(sample)
			}
		}
	}
	return sheet, nil
}

package atlas

// Helper functions for testing.

// Creates a complete uniform atlas where every sample of glyph i
// equals i, so any slice can be traced back to its glyph.
func newIndexedAtlas(width, height int) *Atlas {
	n := ASCIICount
	atlas := &Atlas{
		Pixmap: make([]float64, 0, n*width*height),
		Heights: make([]int, n),
		Widths: make([]int, n),
	}
	for i := 0; i < n; i++ {
		atlas.Heights[i] = height
		atlas.Widths[i] = width
		for j := 0; j < width*height; j++ {
			atlas.Pixmap = append(atlas.Pixmap, float64(i))
		}
	}
	return atlas
}

// Creates an atlas whose samples are their own pixmap position, which
// makes offsets directly observable.
func newSequentialAtlas(width, height, numGlyphs int) *Atlas {
	atlas := &Atlas{
		Pixmap: make([]float64, numGlyphs*width*height),
		Heights: make([]int, numGlyphs),
		Widths: make([]int, numGlyphs),
	}
	for i := range atlas.Pixmap { atlas.Pixmap[i] = float64(i) }
	for i := 0; i < numGlyphs; i++ {
		atlas.Heights[i] = height
		atlas.Widths[i] = width
	}
	return atlas
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// atlas is a package to load and inspect the glyph lookup tables
// produced by askier, an ASCII art converter.
//
// An askier atlas is a JSON document storing, for every printable
// ASCII character, a small grayscale pixel map of the glyph as rendered
// with a specific font and size. All the pixel maps are concatenated
// into a single flat buffer, in code point order starting at the space
// character (32), with the cell dimensions of each glyph stored apart.
//
// Common usage only requires a couple functions:
//   glyphAtlas, err := atlas.Load("ascii_lut_v0.0.3_Monospace_12.json")
//   if err != nil { ... }
//   glyph, err := glyphAtlas.Glyph('g')
//   if err != nil { ... }
//   img := glyph.Gray() // *image.Gray, ready to be displayed or encoded
//
// The [github.com/askier/atlas/view] subpackage can then be used to show
// the glyph on a window, and [github.com/askier/atlas/calibrate] to
// generate new atlases from .ttf and .otf fonts.
package atlas

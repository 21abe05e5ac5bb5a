// The font subpackage contains helper functions to parse the fonts
// used for atlas calibration and to obtain the information that
// askier uses to name atlas files (family and size).
//
// When no font is specified, [Default]() provides Go Mono, a
// monospaced font embedded in golang.org/x/image. Monospaced fonts
// are strongly recommended for ASCII art, as every glyph must fit
// the same cell.
package font

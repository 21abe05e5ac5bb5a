// The calibrate subpackage generates askier atlases from fonts.
//
// Calibration renders every printable ASCII glyph into a fixed-size
// cell (black ink on a white background), measures how much ink each
// cell contains and sorts the characters from lightest to darkest to
// build the luminance lookup table (LUT). The rendered cells are kept
// in the atlas as the glyph pixel maps.
//
// Calibrations are expensive enough to be worth caching, so
// [EnsureCalibrated]() first looks for a previously saved atlas named
// after the font family and size, like askier does.
package calibrate

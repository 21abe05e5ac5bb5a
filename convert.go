package atlas

import "fmt"
import "math"

import "golang.org/x/exp/constraints"

// Numeric types that can be used as pixmap samples.
type Sample interface {
	constraints.Integer | constraints.Float
}

// Converts a sample to an 8-bit unsigned value with fixed-width
// truncation semantics: integers wrap around (v mod 256, also for
// negative values), while floats are first truncated toward zero.
// NaN and infinities map to 0.
func ToUint8[T Sample](value T) uint8 {
	switch v := any(value).(type) {
	case float32:
		return truncFloatToUint8(float64(v))
	case float64:
		return truncFloatToUint8(v)
	default:
		return uint8(value) // integer conversion already wraps
	}
}

func truncFloatToUint8(value float64) uint8 {
	if math.IsNaN(value) || math.IsInf(value, 0) { return 0 }
	// out of int64 range values have no meaningful low bits left
	if value >= math.MaxInt64 || value <= math.MinInt64 { return 0 }
	return uint8(int64(value))
}

// Converts all the given samples with [ToUint8]().
func ToUint8Slice[T Sample](samples []T) []uint8 {
	out := make([]uint8, len(samples))
	for i, sample := range samples {
		out[i] = ToUint8(sample)
	}
	return out
}

// Reshapes a flat row-major buffer into a height x width grid. The rows
// of the returned grid alias the given buffer. Fails with [ErrBadShape]
// if len(flat) != height*width or the dimensions are negative.
func Reshape[T any](flat []T, height, width int) ([][]T, error) {
	if height < 0 || width < 0 || len(flat) != height*width {
		return nil, fmt.Errorf("%w: %d samples into %dx%d", ErrBadShape, len(flat), height, width)
	}
	grid := make([][]T, height)
	for row := 0; row < height; row++ {
		start := row*width
		grid[row] = flat[start : start + width : start + width]
	}
	return grid, nil
}

// The inverse of [Reshape](). The result never aliases the grid.
func Flatten[T any](grid [][]T) []T {
	size := 0
	for _, row := range grid { size += len(row) }
	flat := make([]T, 0, size)
	for _, row := range grid {
		flat = append(flat, row...)
	}
	return flat
}

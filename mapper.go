package atlas

import "errors"
import "math"

// A Mapper picks the atlas character whose measured ink density
// best matches a luminance level.
type Mapper struct {
	lut []byte
}

// Creates a mapper from the atlas LUT. Fails if the atlas has no LUT.
func NewMapper(atlas *Atlas) (*Mapper, error) {
	if len(atlas.LUT) == 0 {
		return nil, errors.New("atlas has no lut")
	}
	lut := make([]byte, len(atlas.LUT))
	for i, code := range atlas.LUT {
		lut[i] = byte(code)
	}
	return &Mapper{ lut: lut }, nil
}

// Returns the character for the given luminance, where 0 is
// black and 1 is white. Values out of [0, 1] are clamped.
func (self *Mapper) Map(luminance float64) byte {
	darkness := 1.0 - luminance
	maxIndex := len(self.lut) - 1
	index := int(math.Round(darkness*float64(maxIndex)))
	if index < 0 { index = 0 }
	if index > maxIndex { index = maxIndex }
	return self.lut[index]
}

// Same as [Mapper.Map](), taking an 8-bit gray level.
func (self *Mapper) MapGray(level uint8) byte {
	return self.Map(float64(level)/255.0)
}

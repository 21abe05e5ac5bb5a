package atlas

import "image"

import xdraw "golang.org/x/image/draw"

// Returns a copy of the image enlarged by the given integer factor
// with nearest neighbour sampling, so each sample becomes a solid
// factor x factor block. Factors below 1 are treated as 1.
func Upscale(img *image.Gray, factor int) *image.Gray {
	if factor < 1 { factor = 1 }
	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

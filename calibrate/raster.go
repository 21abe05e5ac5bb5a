package calibrate

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// A cellRasterizer wraps [vector.Rasterizer] to draw glyph outlines
// into fixed-size cells. Outlines may stick out of the cell (e.g.
// underscores or descenders on small cells); those parts are drawn
// on a bigger canvas and cropped away.
type cellRasterizer struct {
	rasterizer vector.Rasterizer
	normOffset fixed.Point26_6 // offset to move the canvas to the positive quadrant
}

func (self *cellRasterizer) moveTo(point fixed.Point26_6) {
	x, y := self.toFloat32s(point)
	self.rasterizer.MoveTo(x, y)
}

func (self *cellRasterizer) lineTo(point fixed.Point26_6) {
	x, y := self.toFloat32s(point)
	self.rasterizer.LineTo(x, y)
}

func (self *cellRasterizer) quadTo(control, target fixed.Point26_6) {
	cx, cy := self.toFloat32s(control)
	tx, ty := self.toFloat32s(target)
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

func (self *cellRasterizer) cubeTo(controlA, controlB, target fixed.Point26_6) {
	cax, cay := self.toFloat32s(controlA)
	cbx, cby := self.toFloat32s(controlB)
	tx , ty  := self.toFloat32s(target)
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

func (self *cellRasterizer) toFloat32s(point fixed.Point26_6) (float32, float32) {
	point = point.Add(self.normOffset)
	return float32(point.X)/64.0, float32(point.Y)/64.0
}

// Rasterizes the outline with its origin at the given position within
// a cellW x cellH cell, and returns the ink coverage of the cell.
func (self *cellRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6, cellW, cellH int) *image.Alpha {
	cell := image.Rect(0, 0, cellW, cellH)
	if !hasInk(outline) { return image.NewAlpha(cell) }

	// canvas = cell + outline bounds, in whole pixels
	bounds := outline.Bounds()
	bounds.Min = bounds.Min.Add(origin)
	bounds.Max = bounds.Max.Add(origin)
	canvas := cell.Union(image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
	))

	self.normOffset = origin.Sub(fixed.P(canvas.Min.X, canvas.Min.Y))
	self.rasterizer.Reset(canvas.Dx(), canvas.Dy())
	self.rasterizer.DrawOp = draw.Src
	self.processOutline(outline)

	mask := image.NewAlpha(image.Rect(0, 0, canvas.Dx(), canvas.Dy()))
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// crop the cell area
	out := image.NewAlpha(cell)
	draw.Draw(out, cell, mask, cell.Min.Sub(canvas.Min), draw.Src)
	return out
}

func (self *cellRasterizer) processOutline(outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			self.moveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			self.lineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			self.quadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			self.cubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}

// Whether the outline includes any line or curve (spaces don't).
func hasInk(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}

//go:build !headless

package view

import "image"
import "context"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"
import "github.com/sirupsen/logrus"

// Opens a window showing the image and blocks until any key is
// pressed, the window is closed or the context is canceled.
//
// Like [ebiten.RunGame](), this must be called from the main goroutine.
func Show(ctx context.Context, img *image.Gray, opts Options) error {
	if img == nil { panic("nil image") }
	viewer := &viewer{ ctx: ctx, updates: opts.Updates, scale: opts.Scale }
	viewer.setImage(img)

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(viewer)
}

type viewer struct {
	ctx context.Context
	updates <-chan *image.Gray
	image *ebiten.Image
	bounds image.Rectangle
	scale int // requested scale
	fitScale int
	keys []ebiten.Key
}

func (self *viewer) setImage(img *image.Gray) {
	if self.image != nil { self.image.Deallocate() }
	self.bounds = img.Bounds()
	self.image = ebiten.NewImageFromImage(img)
	self.fitScale = FitScale(self.bounds.Dx(), self.bounds.Dy(), self.scale)
	ebiten.SetWindowSize(self.bounds.Dx()*self.fitScale, self.bounds.Dy()*self.fitScale)
	logrus.WithFields(logrus.Fields{
		"size": self.bounds.Size().String(),
		"scale": self.fitScale,
	}).Debug("view image set")
}

func (self *viewer) Layout(_, _ int) (int, int) {
	return self.bounds.Dx()*self.fitScale, self.bounds.Dy()*self.fitScale
}

func (self *viewer) Update() error {
	if self.ctx.Err() != nil { return ebiten.Termination }

	self.keys = inpututil.AppendJustPressedKeys(self.keys[:0])
	if len(self.keys) > 0 { return ebiten.Termination }

	select {
	case img, ok := <-self.updates:
		if !ok {
			self.updates = nil
		} else if img != nil {
			self.setImage(img)
		}
	default:
		// no updates
	}
	return nil
}

func (self *viewer) Draw(canvas *ebiten.Image) {
	canvas.Fill(color.Black)
	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(float64(self.fitScale), float64(self.fitScale))
	opts.Filter = ebiten.FilterNearest
	canvas.DrawImage(self.image, &opts)
}

//go:build headless

package view

import "image"
import "context"
import "strings"
import "testing"

func TestShowHeadless(t *testing.T) {
	first := image.NewGray(image.Rect(0, 0, 2, 1))
	copy(first.Pix, []uint8{ 0, 255 })
	second := image.NewGray(image.Rect(0, 0, 2, 1))
	copy(second.Pix, []uint8{ 255, 0 })

	var out strings.Builder
	err := Show(context.Background(), first, Options{ Title: "frame", Output: &out })
	if err != nil { t.Fatal(err) }
	if out.String() != "frame\n@ \n" { t.Fatalf("unexpected output %q", out.String()) }

	// nil images are skipped and closing the channel returns
	out.Reset()
	updates := make(chan *image.Gray, 2)
	updates <- nil
	updates <- second
	close(updates)
	err = Show(context.Background(), first, Options{ Output: &out, Updates: updates })
	if err != nil { t.Fatal(err) }
	if out.String() != "@ \n @\n" { t.Fatalf("unexpected output %q", out.String()) }
}

func TestShowHeadlessCancel(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	pending := make(chan *image.Gray) // never sent to
	err := Show(ctx, img, Options{ Output: &out, Updates: pending })
	if err != nil { t.Fatal(err) }
	if out.String() != "@\n" { t.Fatalf("unexpected output %q", out.String()) }
}

//go:build headless

package view

import "os"
import "io"
import "image"
import "context"
import "strings"

import "golang.org/x/term"

// Prints the image as shaded text, one character per sample, to
// [Options].Output. If [Options].Updates is set, each received image
// is printed too until the channel is closed or the context is canceled.
func Show(ctx context.Context, img *image.Gray, opts Options) error {
	if img == nil { panic("nil image") }
	out := opts.Output
	if out == nil { out = os.Stdout }
	width := 0
	if file, isFile := out.(*os.File); isFile && term.IsTerminal(int(file.Fd())) {
		width, _, _ = term.GetSize(int(file.Fd()))
	}

	err := printImage(out, img, opts, width)
	if err != nil || opts.Updates == nil { return err }
	for {
		select {
		case <-ctx.Done():
			return nil
		case img, ok := <-opts.Updates:
			if !ok { return nil }
			if img == nil { continue }
			err = printImage(out, img, opts, width)
			if err != nil { return err }
		}
	}
}

func printImage(out io.Writer, img *image.Gray, opts Options, maxWidth int) error {
	var builder strings.Builder
	if opts.Title != "" {
		builder.WriteString(opts.Title)
		builder.WriteByte('\n')
	}
	builder.WriteString(Text(img, opts.Mapper, maxWidth))
	_, err := io.WriteString(out, builder.String())
	return err
}

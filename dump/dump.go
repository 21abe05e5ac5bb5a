// The dump subpackage prints glyph pixel maps as text, which is
// often faster to analyze than an image when debugging calibration
// issues: the raw sample values can be read directly.
package dump

import "os"
import "io"
import "fmt"
import "strings"

import "golang.org/x/term"
import "golang.org/x/text/unicode/runenames"

import "github.com/askier/atlas"

// A Printer writes glyph dumps to a writer.
type Printer struct {
	Writer io.Writer

	// Maximum line width in columns. Longer lines are cut and
	// terminated with '>'. Zero means no limit.
	MaxWidth int

	// Number of characters used for each sample on shaded output.
	// Terminal cells are roughly twice as tall as wide, so 2 keeps
	// glyph proportions. Values below 1 are treated as 1.
	Widen int
}

// Creates a printer for the given writer. If the writer is a terminal,
// the line width is limited to the terminal width.
func NewPrinter(writer io.Writer) *Printer {
	return &Printer{
		Writer: writer,
		MaxWidth: TerminalWidth(writer),
		Widen: 2,
	}
}

// Returns the width of the terminal behind the given writer, or 0
// if the writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	file, isFile := writer.(*os.File)
	if !isFile { return 0 }
	fd := int(file.Fd())
	if !term.IsTerminal(fd) { return 0 }
	width, _, err := term.GetSize(fd)
	if err != nil { return 0 }
	return width
}

// Returns a description of the glyph rune, like U+0067 LATIN SMALL LETTER G.
func Describe(r rune) string {
	name := runenames.Name(r)
	if name == "" { return fmt.Sprintf("%U", r) }
	return fmt.Sprintf("%U %s", r, name)
}

// Writes a one line summary of the glyph:
//   'g' U+0067 LATIN SMALL LETTER G (index 71, 12x12, offset 10224)
func (self *Printer) Header(glyph *atlas.Glyph) error {
	line := fmt.Sprintf("%q %s (index %d, %dx%d, offset %d)",
		glyph.Rune, Describe(glyph.Rune), glyph.Index, glyph.Width, glyph.Height, glyph.Offset)
	return self.writeLine(line)
}

// Writes the glyph samples converted to uint8, one row per line,
// prefixed by the row number:
//   000: [255 255 128 ...]
func (self *Printer) Rows(glyph *atlas.Glyph) error {
	for row, samples := range glyph.Grid() {
		line := fmt.Sprintf("%03d: %03v", row, atlas.ToUint8Slice(samples))
		err := self.writeLine(line)
		if err != nil { return err }
	}
	return nil
}

// Writes the glyph using the atlas characters themselves as shades,
// mapping each sample gray level through the given mapper.
func (self *Printer) Shade(glyph *atlas.Glyph, mapper *atlas.Mapper) error {
	widen := max(self.Widen, 1)
	var builder strings.Builder
	for _, samples := range glyph.Grid() {
		builder.Reset()
		for _, sample := range samples {
			char := mapper.MapGray(atlas.ToUint8(sample))
			for i := 0; i < widen; i++ { builder.WriteByte(char) }
		}
		err := self.writeLine(builder.String())
		if err != nil { return err }
	}
	return nil
}

func (self *Printer) writeLine(line string) error {
	if self.MaxWidth > 0 && len(line) > self.MaxWidth {
		line = line[: self.MaxWidth - 1] + ">"
	}
	_, err := io.WriteString(self.Writer, line + "\n")
	return err
}

// Shorthand for [Printer.Header]() without width limits.
func Header(w io.Writer, glyph *atlas.Glyph) error {
	return (&Printer{ Writer: w }).Header(glyph)
}

// Shorthand for [Printer.Rows]() without width limits.
func Rows(w io.Writer, glyph *atlas.Glyph) error {
	return (&Printer{ Writer: w }).Rows(glyph)
}

// Shorthand for [Printer.Shade]() without width limits and one
// character per sample.
func Shade(w io.Writer, glyph *atlas.Glyph, mapper *atlas.Mapper) error {
	return (&Printer{ Writer: w, Widen: 1 }).Shade(glyph, mapper)
}

package dump

import "strings"
import "testing"

import "github.com/askier/atlas"

func uniformAtlas(width, height int) *atlas.Atlas {
	result := &atlas.Atlas{
		Pixmap: make([]float64, atlas.ASCIICount*width*height),
		Heights: make([]int, atlas.ASCIICount),
		Widths: make([]int, atlas.ASCIICount),
		LUT: []int{ ' ', '.', '#' },
	}
	for i := 0; i < atlas.ASCIICount; i++ {
		result.Heights[i] = height
		result.Widths[i] = width
	}
	return result
}

func TestHeader(t *testing.T) {
	glyph, err := uniformAtlas(12, 12).Glyph('g')
	if err != nil { t.Fatal(err) }

	var out strings.Builder
	err = Header(&out, glyph)
	if err != nil { t.Fatal(err) }
	want := "'g' U+0067 LATIN SMALL LETTER G (index 71, 12x12, offset 10224)\n"
	if out.String() != want { t.Fatalf("expected %q, got %q", want, out.String()) }

	if Describe(' ') != "U+0020 SPACE" { t.Fatalf("unexpected space description %q", Describe(' ')) }
}

func TestRows(t *testing.T) {
	source := uniformAtlas(2, 2)
	glyph, err := source.Glyph(' ')
	if err != nil { t.Fatal(err) }
	copy(glyph.Samples, []float64{ 0, 255, 256, 12.7 })

	var out strings.Builder
	err = Rows(&out, glyph)
	if err != nil { t.Fatal(err) }
	want := "000: [000 255]\n001: [000 012]\n"
	if out.String() != want { t.Fatalf("expected %q, got %q", want, out.String()) }
}

func TestShade(t *testing.T) {
	source := uniformAtlas(3, 1)
	glyph, err := source.Glyph('A')
	if err != nil { t.Fatal(err) }
	copy(glyph.Samples, []float64{ 255, 128, 0 })
	mapper, err := atlas.NewMapper(source)
	if err != nil { t.Fatal(err) }

	var out strings.Builder
	err = Shade(&out, glyph, mapper)
	if err != nil { t.Fatal(err) }
	if out.String() != " .#\n" { t.Fatalf("unexpected shade %q", out.String()) }

	out.Reset()
	printer := &Printer{ Writer: &out, Widen: 2 }
	err = printer.Shade(glyph, mapper)
	if err != nil { t.Fatal(err) }
	if out.String() != "  ..##\n" { t.Fatalf("unexpected widened shade %q", out.String()) }
}

func TestMaxWidth(t *testing.T) {
	var out strings.Builder
	printer := &Printer{ Writer: &out, MaxWidth: 8 }
	glyph, err := uniformAtlas(12, 1).Glyph('a')
	if err != nil { t.Fatal(err) }
	err = printer.Rows(glyph)
	if err != nil { t.Fatal(err) }
	if out.String() != "000: [0>\n" { t.Fatalf("unexpected cut line %q", out.String()) }

	if TerminalWidth(&out) != 0 { t.Fatal("builders are not terminals") }
}

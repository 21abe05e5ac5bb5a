package atlas

import "testing"

func TestMapper(t *testing.T) {
	_, err := NewMapper(&Atlas{})
	if err == nil { t.Fatal("expected error for atlas without lut") }

	mapper, err := NewMapper(&Atlas{ LUT: []int{' ', '.', ':', '#', '@'} })
	if err != nil { t.Fatal(err) }

	cases := []struct{ luminance float64; want byte }{
		{1.0, ' '}, {0.0, '@'}, {0.5, ':'}, {0.76, '.'}, {0.74, '.'},
		{0.6, ':'}, {0.2, '#'}, {1.7, ' '}, {-3.0, '@'},
	}
	for _, c := range cases {
		got := mapper.Map(c.luminance)
		if got != c.want {
			t.Fatalf("Map(%v): expected %q, got %q", c.luminance, c.want, got)
		}
	}

	if mapper.MapGray(255) != ' ' { t.Fatal("white must map to the lightest glyph") }
	if mapper.MapGray(0) != '@' { t.Fatal("black must map to the darkest glyph") }

	single, err := NewMapper(&Atlas{ LUT: []int{'x'} })
	if err != nil { t.Fatal(err) }
	if single.Map(0.3) != 'x' { t.Fatal("single entry lut") }
}

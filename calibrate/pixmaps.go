package calibrate

import "os"
import "strconv"
import "image/png"
import "path/filepath"

import "github.com/sirupsen/logrus"

import "github.com/askier/atlas"

// Returns the path where askier stores the PNG image of a single
// calibrated glyph:
//   <dir>/pixmaps/<version>_<key>_glyph_<code>_pixmap.png
func PixmapPath(dir string, key string, r rune) string {
	name := atlas.FormatVersion + "_" + key + "_glyph_" + strconv.Itoa(int(r)) + "_pixmap.png"
	return filepath.Join(dir, "pixmaps", name)
}

// Writes every glyph of the atlas as a grayscale PNG at its
// [PixmapPath](). Returns the written paths in atlas order.
func SavePixmaps(source *atlas.Atlas, dir string, key string) ([]string, error) {
	err := os.MkdirAll(filepath.Join(dir, "pixmaps"), 0o755)
	if err != nil { return nil, err }

	paths := make([]string, 0, source.NumGlyphs())
	for index := 0; index < source.NumGlyphs(); index++ {
		glyph, err := source.GlyphAt(index)
		if err != nil { return paths, err }
		path := PixmapPath(dir, key, glyph.Rune)
		file, err := os.Create(path)
		if err != nil { return paths, err }
		err = png.Encode(file, glyph.Gray())
		if err != nil {
			_ = file.Close()
			return paths, err
		}
		err = file.Close()
		if err != nil { return paths, err }
		paths = append(paths, path)
	}

	logrus.WithFields(logrus.Fields{ "dir": dir, "glyphs": len(paths) }).Debug("glyph pixmaps saved")
	return paths, nil
}

package calibrate

import "path/filepath"

import "golang.org/x/image/font/sfnt"
import "github.com/sirupsen/logrus"

import "github.com/askier/atlas"
import "github.com/askier/atlas/font"

// Returns the path where askier stores the atlas for the given font
// key (see [font.Key]()): <dir>/ascii_lut_v<version>_<key>.json.
func CachePath(dir string, key string) string {
	return filepath.Join(dir, "ascii_lut_v" + atlas.FormatVersion + "_" + key + ".json")
}

// Returns the atlas for the given font and size, loading it from dir
// when a valid cached atlas exists, or calibrating and saving it
// otherwise. The path of the atlas file is returned too.
//
// Cached atlases that fail to load or validate are silently replaced,
// as they can always be regenerated.
func EnsureCalibrated(dir string, fnt *sfnt.Font, size int) (*atlas.Atlas, string, error) {
	calibrator := New(fnt, size)
	path := CachePath(dir, font.Key(fnt, calibrator.Size()))

	cached, err := tryLoadCache(path)
	if err == nil { return cached, path, nil }
	logrus.WithField("path", path).WithError(err).Debug("calibration cache miss")

	result, err := calibrator.Calibrate()
	if err != nil { return nil, path, err }
	err = result.Save(path)
	if err != nil { return nil, path, err }
	return result, path, nil
}

func tryLoadCache(path string) (*atlas.Atlas, error) {
	cached, err := atlas.Load(path)
	if err != nil { return nil, err }
	err = cached.Validate()
	if err != nil { return nil, err }
	if cached.NumGlyphs() != atlas.ASCIICount || len(cached.LUT) != atlas.ASCIICount {
		return nil, atlas.ErrInconsistent
	}
	return cached, nil
}

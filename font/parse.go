package font

import "os"
import "io"
import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gomono"
import "github.com/sirupsen/logrus"

// Similar to [sfnt.Parse](), but also including the font name
// in the returned values. The bytes must not be modified while
// the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	fontName, err := GetName(newFont)
	return newFont, fontName, err
}

// Attempts to parse the font located at the given filepath and
// returns it along its name. Supported formats are .ttf and .otf.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	font, name, err := parseFontFileAndClose(file)
	if err == nil {
		logrus.WithFields(logrus.Fields{ "path": path, "font": name }).Debug("font parsed")
	}
	return font, name, err
}

// Same as [ParseFromPath](), but for filesystems (e.g., [embed.FS]).
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseFontFileAndClose(file)
}

// Returns the Go Mono font, parsed once and shared.
func Default() (*sfnt.Font, string, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultName, defaultErr = ParseFromBytes(gomono.TTF)
	})
	return defaultFont, defaultName, defaultErr
}

// Parses the font at the given path, or returns [Default]() if
// the path is empty.
func Open(path string) (*sfnt.Font, string, error) {
	if path == "" { return Default() }
	return ParseFromPath(path)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil { return nil, "", err }
	return ParseFromBytes(fontBytes)
}

// Whether the font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	ext := path[len(path) - 4:]
	return ext == ".ttf" || ext == ".otf"
}

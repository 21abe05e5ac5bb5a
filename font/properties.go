package font

import "sync"
import "errors"
import "strconv"
import "strings"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

var defaultOnce sync.Once
var defaultFont *sfnt.Font
var defaultName string
var defaultErr error

// sfnt.Buffer values can't be shared concurrently, and these lookups
// are rare enough that a mutex is all we need.
var sfntBuffer sfnt.Buffer
var sfntBufferMutex sync.Mutex

// Returns the requested font property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	sfntBufferMutex.Lock()
	str, err := font.Name(&sfntBuffer, property)
	sfntBufferMutex.Unlock()
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return str, err
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the full name of the given font.
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the key that askier uses to identify a font configuration in
// atlas file names: the font family followed by the size, like
// "Go Mono_12". Fonts without family use "Unknown".
func Key(font *sfnt.Font, size int) string {
	family, err := GetFamily(font)
	if err != nil || strings.TrimSpace(family) == "" { family = "Unknown" }
	return family + "_" + strconv.Itoa(size)
}

// Returns the runes in the given text that can't be represented by the
// font.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	sfntBufferMutex.Lock()
	defer sfntBufferMutex.Unlock()

	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := font.GlyphIndex(&sfntBuffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}

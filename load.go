package atlas

import "os"
import "io"
import "io/fs"
import "fmt"
import "bytes"
import "encoding/json"

import "github.com/sirupsen/logrus"

// Keys that must be present on any atlas document.
var requiredKeys = []string{"pixmap", "pixmap_heights", "pixmap_widths"}

// Loads the atlas stored at the given path.
//
// Only the JSON structure and the presence of the required keys are
// checked here. Use [Atlas.Validate]() to check the dimensions against
// the pixmap length.
func Load(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil { return nil, err }
	atlas, err := ParseBytes(data)
	if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
	logrus.WithFields(logrus.Fields{
		"path": path,
		"glyphs": atlas.NumGlyphs(),
		"samples": len(atlas.Pixmap),
	}).Debug("atlas loaded")
	return atlas, nil
}

// Same as [Load](), but for filesystems (e.g., [embed.FS]).
func LoadFS(filesys fs.FS, path string) (*Atlas, error) {
	data, err := fs.ReadFile(filesys, path)
	if err != nil { return nil, err }
	atlas, err := ParseBytes(data)
	if err != nil { return nil, fmt.Errorf("%s: %w", path, err) }
	return atlas, nil
}

// Parses an atlas from the given reader.
func Parse(reader io.Reader) (*Atlas, error) {
	data, err := io.ReadAll(reader)
	if err != nil { return nil, err }
	return ParseBytes(data)
}

// Parses an atlas from raw JSON bytes.
func ParseBytes(data []byte) (*Atlas, error) {
	// check required keys first, as json.Unmarshal would
	// silently leave missing fields empty
	var keys map[string]json.RawMessage
	err := json.Unmarshal(data, &keys)
	if err != nil { return nil, err }
	for _, key := range requiredKeys {
		raw, found := keys[key]
		if !found || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
		}
	}

	atlas := &Atlas{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	err = decoder.Decode(atlas)
	if err != nil { return nil, err }
	return atlas, nil
}

package atlas

import "os"
import "io"
import "path/filepath"
import "encoding/json"

import "github.com/sirupsen/logrus"

// Writes the atlas as indented JSON, using the same keys that
// [Load]() expects.
func (self *Atlas) Encode(writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(self)
}

// Saves the atlas at the given path, creating the parent directories
// if necessary. The file is written to a temporary sibling first and
// then renamed, so watchers never observe half-written atlases.
func (self *Atlas) Save(path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil { return err }

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path) + ".*.tmp")
	if err != nil { return err }
	err = tmp.Chmod(0o644)
	if err == nil { err = self.Encode(tmp) }
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	err = tmp.Close()
	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	err = os.Rename(tmp.Name(), path)
	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	logrus.WithFields(logrus.Fields{ "path": path, "glyphs": self.NumGlyphs() }).Debug("atlas saved")
	return nil
}

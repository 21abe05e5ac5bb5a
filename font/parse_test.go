package font

import "io"
import "io/fs"
import "errors"
import "strings"
import "testing"
import "testing/fstest"

import "golang.org/x/image/font/gofont/gomono"

type fakeReadCloser struct{ errOnRead bool }
func (self fakeReadCloser) Read(p []byte) (n int, err error) {
	if self.errOnRead { return 0, errors.New("fakeRead") }
	return 0, io.EOF
}
func (self fakeReadCloser) Close() error {
	return errors.New("fakeClose")
}

func TestParse(t *testing.T) {
	var err error

	_, _, err = ParseFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	if err == nil { t.Fatal("expected error") }

	_, _, err = ParseFromPath("path/with/no/extension")
	if err == nil || !strings.Contains(err.Error(), "invalid font path") {
		t.Fatal("expected error with 'invalid font path' in its contents")
	}

	_, _, err = ParseFromPath("fake/path/must/not/exist/yay.ttf")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got '%v'", err)
	}

	filesys := fstest.MapFS{ "mono.ttf": &fstest.MapFile{ Data: gomono.TTF } }
	_, _, err = ParseFromFS(filesys, "path/with/no/extension")
	if err == nil || !strings.Contains(err.Error(), "invalid font path") {
		t.Fatal("expected error with 'invalid font path' in its contents")
	}
	_, name, err := ParseFromFS(filesys, "mono.ttf")
	if err != nil { t.Fatal(err) }
	if !strings.Contains(name, "Go Mono") { t.Fatalf("unexpected font name '%s'", name) }

	if hasValidFontExtension("") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension(".tt") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension(".ttx") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension("ttf") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension(".tgf") { t.Fatalf("not a valid font extension") }
	if hasValidFontExtension(".xttf") { t.Fatalf("not a valid font extension") }
	if !hasValidFontExtension(".ttf") { t.Fatalf(".ttf must be a valid font extension") }
	if !hasValidFontExtension("a/b.otf") { t.Fatalf(".otf must be a valid font extension") }

	rc := fakeReadCloser{ errOnRead: true }
	_, _, err = parseFontFileAndClose(rc)
	if err == nil || err.Error() != "fakeRead" {
		t.Fatalf("expected err == \"fakeRead\", but got '%v'", err)
	}
	rc.errOnRead = false
	_, _, err = parseFontFileAndClose(rc)
	if err == nil || err.Error() != "fakeClose" {
		t.Fatalf("expected err == \"fakeClose\", but got '%v'", err)
	}
}

func TestDefault(t *testing.T) {
	fontA, nameA, err := Default()
	if err != nil { t.Fatal(err) }
	fontB, _, err := Open("")
	if err != nil { t.Fatal(err) }
	if fontA != fontB { t.Fatal("expected the default font to be shared") }

	family, err := GetFamily(fontA)
	if err != nil { t.Fatal(err) }
	if !strings.Contains(nameA, family) {
		t.Fatalf("expected font name (%s) to contain its family (%s)", nameA, family)
	}
	if Key(fontA, 12) != family + "_12" { t.Fatalf("unexpected key %s", Key(fontA, 12)) }

	_, err = GetProperty(fontA, 999)
	if err != ErrNotFound { t.Fatalf("expected ErrNotFound, got %v", err) }

	missing, err := GetMissingRunes(fontA, "askier ~ #@")
	if err != nil { t.Fatal(err) }
	if len(missing) != 0 { t.Fatalf("unexpected missing runes %q", string(missing)) }
	missing, err = GetMissingRunes(fontA, "\U0001F600")
	if err != nil { t.Fatal(err) }
	if len(missing) != 1 { t.Fatalf("expected 1 missing rune, got %d", len(missing)) }
}

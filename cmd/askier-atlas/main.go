// askier-atlas inspects and generates the glyph atlases used by askier
// to render images as ASCII art.
//
// Usage examples:
//   askier-atlas show g
//   askier-atlas dump --shade '@'
//   askier-atlas calibrate --size 16 path/to/font.ttf
package main

import "os"
import "fmt"

import "github.com/askier/atlas/cmd/askier-atlas/cmd"

func main() {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

//go:build headless

package cmd

import "io"
import "sync"
import "time"
import "bytes"
import "context"
import "strings"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/askier/atlas"

type syncBuffer struct {
	mutex  sync.Mutex
	buffer bytes.Buffer
}

func (self *syncBuffer) Write(p []byte) (int, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.buffer.Write(p)
}

func (self *syncBuffer) String() string {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.buffer.String()
}

func TestShow(t *testing.T) {
	path := writeTestAtlas(t, isolate(t))

	// glyph 'g' samples are all 71, shaded as '#' by the test LUT
	out, err := run(t, "show", "--atlas", path)
	require.NoError(t, err)
	assert.Equal(t, "askier-atlas: 'g' (index 71, 4x3)\n####\n####\n####\n", out)

	out, err = run(t, "show", "--atlas", path, "--scale", "2", " ")
	require.NoError(t, err)
	assert.Equal(t, "askier-atlas: ' ' (index 0, 4x3)\n@@@@\n@@@@\n@@@@\n", out)

	_, err = run(t, "show", "--atlas", path, "\x1f")
	assert.ErrorIs(t, err, atlas.ErrBelowSpace)
}

func TestShowWatch(t *testing.T) {
	path := writeTestAtlas(t, isolate(t))

	var out syncBuffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{ "show", "--watch", "--atlas", path })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "####") },
		2*time.Second, 10*time.Millisecond, "expected the initial frame")

	// darken 'g' and save the atlas again
	source, err := atlas.Load(path)
	require.NoError(t, err)
	glyph, err := source.Glyph('g')
	require.NoError(t, err)
	for i := glyph.Offset; i < glyph.Offset + glyph.Width*glyph.Height; i++ {
		source.Pixmap[i] = 0
	}
	require.NoError(t, source.Save(path))

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "@@@@") },
		2*time.Second, 10*time.Millisecond, "expected a reloaded frame")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2*time.Second):
		t.Fatal("show didn't return after cancellation")
	}
}

package fading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStartsLoading(t *testing.T) {
	img := New(Options{Src: "http://x/r.png"})

	assert.Equal(t, Loading, img.State())
	assert.False(t, img.Ready())
	assert.Contains(t, img.ClassName(), "blur-2xl")
	assert.Contains(t, img.ClassName(), "scale-120")
}

func TestCompleteTransitionsOnce(t *testing.T) {
	img := New(Options{Src: "http://x/r.png"})

	assert.True(t, img.Complete())
	assert.Equal(t, Ready, img.State())
	assert.Equal(t, "bg-gray-400 transition duration-1000 blur-0 scale-100", img.ClassName())

	// Further completions change nothing
	assert.False(t, img.Complete())
	assert.False(t, img.Complete())
	assert.Equal(t, Ready, img.State())
}

func TestForcedFitAndLayout(t *testing.T) {
	tests := []struct {
		name      string
		objectFit string
		layout    string
	}{
		{"unset", "", ""},
		{"contain fixed", "contain", "fixed"},
		{"fill intrinsic", "fill", "intrinsic"},
		{"already forced", FitCover, LayoutResponsive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(Options{
				Src:       "http://x/r.png",
				Alt:       "Rick",
				Width:     300,
				Height:    300,
				ObjectFit: tt.objectFit,
				Layout:    tt.layout,
			})

			opts := img.Options()
			assert.Equal(t, "cover", opts.ObjectFit)
			assert.Equal(t, "responsive", opts.Layout)
			// Everything else is the caller's
			assert.Equal(t, "http://x/r.png", opts.Src)
			assert.Equal(t, "Rick", opts.Alt)
			assert.Equal(t, 300, opts.Width)
			assert.Equal(t, 300, opts.Height)
		})
	}
}

func TestImagesDoNotShareState(t *testing.T) {
	a := New(Options{Src: "a"})
	b := New(Options{Src: "b"})

	a.Complete()

	assert.True(t, a.Ready())
	assert.False(t, b.Ready())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "ready", Ready.String())
}

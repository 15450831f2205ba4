package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcessAvatarProducesWebP(t *testing.T) {
	out, err := ProcessAvatar(pngFixture(t, 640, 480))
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// RIFF....WEBP container header
	require.Greater(t, len(out), 12)
	assert.Equal(t, "RIFF", string(out[0:4]))
	assert.Equal(t, "WEBP", string(out[8:12]))
}

func TestProcessAvatarUpscalesSmallImages(t *testing.T) {
	out, err := ProcessAvatar(pngFixture(t, 16, 16))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestProcessAvatarRejectsGarbage(t *testing.T) {
	_, err := ProcessAvatar(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}

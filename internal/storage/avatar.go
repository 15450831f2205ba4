package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const avatarSize = 256

// ProcessAvatar decodes a JPEG or PNG, scales it to a square avatar and
// re-encodes it as WebP.
func ProcessAvatar(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("storage: decoding avatar: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("storage: encoding webp: %w", err)
	}

	return buf.Bytes(), nil
}

package processor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodedImage(t *testing.T, width, height int) []byte {
	t.Helper()
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			canvas.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buffer bytes.Buffer
	assert.NoError(t, jpeg.Encode(&buffer, canvas, nil))
	return buffer.Bytes()
}

func TestArtworkSmallPassthrough(t *testing.T) {
	data := encodedImage(t, 300, 300)
	processed, err := Artwork{}.Do(data)
	assert.NoError(t, err)
	assert.Equal(t, data, processed)
}

func TestArtworkDownscale(t *testing.T) {
	processed, err := Artwork{}.Do(encodedImage(t, 1000, 600))
	assert.NoError(t, err)

	scaled, err := jpeg.Decode(bytes.NewReader(processed))
	assert.NoError(t, err)
	assert.LessOrEqual(t, scaled.Bounds().Dx(), artworkBound)
	assert.LessOrEqual(t, scaled.Bounds().Dy(), artworkBound)
}

func TestArtworkGarbage(t *testing.T) {
	_, err := Artwork{}.Do([]byte("not an image"))
	assert.Error(t, err)
}

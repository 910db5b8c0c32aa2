package processor

import (
	"bytes"
	"image/jpeg"

	"github.com/nfnt/resize"
)

// artworkBound caps artwork at a side length players render natively,
// keeping embedded pictures from bloating the audio files.
const artworkBound = 500

// Artwork normalizes artwork blobs, downscaling anything larger than
// the bound while keeping the aspect ratio.
type Artwork struct{}

func (Artwork) Do(data []byte) ([]byte, error) {
	image, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := image.Bounds()
	if bounds.Dx() <= artworkBound && bounds.Dy() <= artworkBound {
		return data, nil
	}

	scaled := resize.Thumbnail(artworkBound, artworkBound, image, resize.Lanczos3)
	var buffer bytes.Buffer
	if err := jpeg.Encode(&buffer, scaled, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

package imageutil

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/disintegration/imaging"
)

// SniffMIME detects the payload type from magic bytes, ignoring whatever
// filename or Content-Type the client claimed.
func SniffMIME(data []byte) string {
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8 {
		return "image/jpeg"
	}
	if len(data) >= 8 &&
		data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 &&
		data[4] == 0x0D && data[5] == 0x0A && data[6] == 0x1A && data[7] == 0x0A {
		return "image/png"
	}
	return http.DetectContentType(data)
}

// Prepare decodes the uploaded bytes to confirm they are a raster image and
// caps the larger dimension at maxDim so huge bitmaps are not shipped to the
// inference service. Images within the cap pass through untouched.
func Prepare(data []byte, maxDim int) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if maxDim <= 0 || (bounds.Dx() <= maxDim && bounds.Dy() <= maxDim) {
		return data, SniffMIME(data), nil
	}

	resized := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, "", fmt.Errorf("failed to encode resized image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

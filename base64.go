package roundicon

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"
)

// DecodeBase64Image decodes a base64-encoded image (optionally a data URL) into
// an image.Image. It returns the decoded image and the detected format string
// ("png", "jpeg", "webp", etc.).
func DecodeBase64Image(input string) (image.Image, string, error) {
	raw := stripDataPrefix(strings.TrimSpace(input))

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", &DecodeError{Source: "base64", Err: fmt.Errorf("decode base64: %w", err)}
	}

	return DecodeImageBytes(data)
}

// EncodePNGToBase64 encodes an image as PNG and returns a base64 string.
func EncodePNGToBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", &EncodeError{Path: "base64", Err: err}
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// RoundCornersBase64 rounds the corners of a base64-encoded image with the
// default engine and returns the result as base64 PNG.
func RoundCornersBase64(input string, radiusPercent int) (string, Info, error) {
	return getDefaultEngine().RoundCornersBase64(input, radiusPercent)
}

// RoundCornersBase64 rounds the corners of a base64-encoded image (optionally a
// data URL) and returns the result as base64 PNG.
func (e *Engine) RoundCornersBase64(input string, radiusPercent int) (string, Info, error) {
	img, _, err := DecodeBase64Image(input)
	if err != nil {
		return "", Info{}, err
	}

	rounded, info, err := e.RoundCorners(img, radiusPercent)
	if err != nil {
		return "", Info{}, err
	}

	output, err := EncodePNGToBase64(rounded)
	if err != nil {
		return "", Info{}, err
	}
	return output, info, nil
}

func stripDataPrefix(input string) string {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "data:") {
		if idx := strings.Index(input, ","); idx != -1 {
			return input[idx+1:]
		}
	}
	return input
}

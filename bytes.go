package roundicon

import "bytes"

// RoundCornersBytes decodes raw image bytes, rounds the corners with the
// default engine and returns the result encoded as PNG.
func RoundCornersBytes(data []byte, radiusPercent int) ([]byte, Info, error) {
	return getDefaultEngine().RoundCornersBytes(data, radiusPercent)
}

// RoundCornersBytes decodes raw image bytes, rounds the corners and returns the
// result encoded as PNG.
func (e *Engine) RoundCornersBytes(data []byte, radiusPercent int) ([]byte, Info, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Info{}, err
	}

	rounded, info, err := e.RoundCorners(img, radiusPercent)
	if err != nil {
		return nil, Info{}, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, rounded); err != nil {
		return nil, Info{}, &EncodeError{Path: "bytes", Err: err}
	}
	return buf.Bytes(), info, nil
}

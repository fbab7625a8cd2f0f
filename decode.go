package roundicon

import (
	"bytes"
	"image"
	"image/png"
	"io"

	// Register common decoders, including WebP, BMP and TIFF via x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode reads an image from the reader, returning the decoded image and the
// detected format string ("png", "jpeg", "webp", etc.).
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// DecodeImageBytes decodes an in-memory image.
func DecodeImageBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", &DecodeError{Source: "bytes", Err: errEmptyData}
	}

	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &DecodeError{Source: "bytes", Err: err}
	}
	return img, format, nil
}

// EncodePNG writes the provided image to the writer as PNG. NRGBA images
// always keep their alpha channel, even when every pixel is opaque.
func EncodePNG(w io.Writer, img image.Image) error {
	if n, ok := img.(*image.NRGBA); ok && n.Opaque() {
		img = keepAlpha{n}
	}
	return png.Encode(w, img)
}

// keepAlpha stops the PNG encoder from downgrading an opaque NRGBA image to
// plain RGB.
type keepAlpha struct {
	*image.NRGBA
}

func (keepAlpha) Opaque() bool { return false }

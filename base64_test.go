package roundicon

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripDataPrefix(t *testing.T) {
	assert.Equal(t, "QUJD", stripDataPrefix("data:image/png;base64,QUJD"))
	assert.Equal(t, "QUJD", stripDataPrefix("DATA:image/png;base64,QUJD"))
	assert.Equal(t, "QUJD", stripDataPrefix("QUJD"))
	assert.Equal(t, "data:broken", stripDataPrefix("data:broken"))
}

func TestRoundCornersBase64DataURL(t *testing.T) {
	src := gradientImage(64, 64)
	encoded := base64.StdEncoding.EncodeToString(encodeFixture(t, src))

	for _, input := range []string{encoded, "data:image/png;base64," + encoded} {
		output, info, err := RoundCornersBase64(input, 25)
		require.NoError(t, err)
		assert.Equal(t, 16, info.RadiusPx)

		raw, err := base64.StdEncoding.DecodeString(output)
		require.NoError(t, err)

		img, format, err := image.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

		_, _, _, a := img.At(0, 0).RGBA()
		assert.Zero(t, a)
	}
}

func TestDecodeBase64ImageInvalid(t *testing.T) {
	_, _, err := DecodeBase64Image("!!not base64!!")
	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "base64", decErr.Source)

	_, _, err = DecodeBase64Image(base64.StdEncoding.EncodeToString([]byte("plain text")))
	assert.True(t, errors.As(err, &decErr))
}

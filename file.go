package roundicon

import (
	"image"
	"log/slog"
	"os"
)

// DefaultOutputPath is used by the command line when no output is given.
const DefaultOutputPath = "icon_rounded.png"

// AddRoundedCorners reads inputPath, rounds its corners with the default
// engine and writes the result as PNG to outputPath.
func AddRoundedCorners(inputPath, outputPath string, radiusPercent int) (Info, error) {
	return getDefaultEngine().AddRoundedCorners(inputPath, outputPath, radiusPercent)
}

// AddRoundedCorners reads inputPath, rounds its corners and writes the result
// as PNG to outputPath. The parent directory of outputPath must exist. Read
// failures are reported as *DecodeError, write failures as *EncodeError. A
// failed write may leave a partial file behind.
func (e *Engine) AddRoundedCorners(inputPath, outputPath string, radiusPercent int) (Info, error) {
	img, err := DecodeFile(inputPath)
	if err != nil {
		return Info{}, err
	}

	rounded, info, err := e.RoundCorners(img, radiusPercent)
	if err != nil {
		return Info{}, err
	}

	if err := WritePNG(outputPath, rounded); err != nil {
		return Info{}, err
	}

	Logger().Info("wrote rounded icon", slog.String("path", outputPath))
	return info, nil
}

// DecodeFile opens and decodes the image at path. Failures are reported as
// *DecodeError.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Source: path, Err: err}
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, &DecodeError{Source: path, Err: err}
	}

	Logger().Debug("decoded input", slog.String("path", path), slog.String("format", format))
	return img, nil
}

// WritePNG creates path and encodes img into it as PNG. Failures are reported
// as *EncodeError.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &EncodeError{Path: path, Err: cerr}
		}
	}()

	if err := EncodePNG(f, img); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

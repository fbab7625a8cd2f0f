package roundicon

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerSilentByDefault(t *testing.T) {
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLoggerRecordsRounding(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	_, _, err := RoundCorners(gradientImage(50, 50), 20)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "rounding corners")
	assert.Contains(t, out, "radius_px=10")
	assert.Contains(t, out, "mask=roundicon.VectorRasterizer")
}

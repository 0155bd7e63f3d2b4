package draw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkWriterAppliesOffset(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out, 5, 2)

	cw.WriteAt(1, 3, "hud")
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[5;6Hhud", out.String())
}

func TestChunkWriterSetOffset(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out, 0, 0)
	cw.SetOffset(1, 1)

	cw.MoveCursor(2, 2)
	cw.WriteString("x")
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[3;3Hx", out.String())
}

func TestChunkWriterFlushResetsBuffer(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out, 0, 0)

	cw.WriteString("first")
	require.NoError(t, cw.Flush())
	cw.WriteString("second")
	require.NoError(t, cw.Flush())

	assert.Equal(t, "firstsecond", out.String())
}

func TestChunkWriterLargePayloadIntact(t *testing.T) {
	var out strings.Builder
	cw := NewChunkWriter(&out, 0, 0)

	payload := strings.Repeat("particle", 1000) // Well past one chunk
	cw.WriteString(payload)
	require.NoError(t, cw.Flush())

	assert.Equal(t, payload, out.String())
}

package logio_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/alexanderspevak/forte/internal/logio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Writer(t *testing.T) {
	var lines []string
	lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	n, err := io.WriteString(lw, "hello")
	require.NoError(t, err)
	assert.Equal(t, 5, n, "expected all bytes consumed")
	assert.Empty(t, lines, "expected partial line to be held")

	_, err = io.WriteString(lw, " world\nsecond\r\nthi")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world", "second"}, lines)

	_, err = io.WriteString(lw, "rd %v\n\nlast")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world", "second", "third %v", ""}, lines,
		"expected format verbs to pass through literally")

	require.NoError(t, lw.Close())
	assert.Equal(t, []string{"hello world", "second", "third %v", "", "last"}, lines)

	require.NoError(t, lw.Sync())
	assert.Len(t, lines, 5, "expected nothing left to flush")
}

func Test_Writer_noLogf(t *testing.T) {
	var lw logio.Writer
	_, err := io.WriteString(&lw, "dropped\n")
	require.NoError(t, err)
	require.NoError(t, lw.Close())
}

package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello world \n"))

	got, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(reader, "p", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)
}

func TestGetDefaultedText(t *testing.T) {
	t.Run("empty input keeps default", func(t *testing.T) {
		var out bytes.Buffer
		reader := bufio.NewReader(strings.NewReader("\n"))

		got, err := GetDefaultedText(reader, "Title", "old title", &out)
		require.NoError(t, err)
		assert.Equal(t, "old title", got)
		assert.Contains(t, out.String(), "[old title]")
	})

	t.Run("input overrides default", func(t *testing.T) {
		var out bytes.Buffer
		reader := bufio.NewReader(strings.NewReader("new title\n"))

		got, err := GetDefaultedText(reader, "Title", "old title", &out)
		require.NoError(t, err)
		assert.Equal(t, "new title", got)
	})
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	got, err := GetMultiline(reader, "Text", &out)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Contains(t, out.String(), "Enter password")
}

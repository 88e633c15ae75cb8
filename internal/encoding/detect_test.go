package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/careercoin/internal/encoding"
)

func readAll(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "title = \"Revisão de Currículo\"\n"
	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// "Revisão" in Windows-1252: ã = 0xE3.
	latin1 := []byte{'R', 'e', 'v', 'i', 's', 0xE3, 'o', '\n'}
	assert.Equal(t, "Revisão\n", readAll(t, latin1))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("[[item]]\n")...)
	assert.Equal(t, "[[item]]\n", readAll(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	input := []byte{0xFF, 0xFE, 'o', 0x00, 'k', 0x00}
	assert.Equal(t, "ok", readAll(t, input))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"Ascii", []byte("plain"), encoding.CharsetUTF8},
		{"BOM8", []byte{0xEF, 0xBB, 0xBF, 'a'}, encoding.CharsetUTF8},
		{"BOM16LE", []byte{0xFF, 0xFE, 'a', 0}, encoding.CharsetUTF16LE},
		{"BOM16BE", []byte{0xFE, 0xFF, 0, 'a'}, encoding.CharsetUTF16BE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encoding.Detect(tt.input))
		})
	}
}

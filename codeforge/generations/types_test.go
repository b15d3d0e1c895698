package generations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedFiles_RoundTrip(t *testing.T) {
	original := GeneratedFiles{
		{Filename: "Button.jsx", Content: "export default function Button() {}", Language: "javascript"},
		{Filename: "Button.css", Content: ".btn { color: red; }", Language: "css"},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded GeneratedFiles
	require.NoError(t, decoded.Scan([]byte(value.(string))))

	assert.Equal(t, original, decoded)
}

func TestGeneratedFiles_ScanString(t *testing.T) {
	// SQLite hands back TEXT columns as strings
	var files GeneratedFiles
	require.NoError(t, files.Scan(`[{"filename":"a.go","content":"package main","language":"go"}]`))

	require.Len(t, files, 1)
	assert.Equal(t, "a.go", files[0].Filename)
}

func TestGeneratedFiles_ScanNil(t *testing.T) {
	var files GeneratedFiles
	require.NoError(t, files.Scan(nil))

	assert.Empty(t, files)
}

func TestGeneratedFiles_EmptyValue(t *testing.T) {
	value, err := GeneratedFiles(nil).Value()
	require.NoError(t, err)

	assert.Equal(t, "[]", value)
}

func TestGeneratedFiles_ScanRejectsUnknownType(t *testing.T) {
	var files GeneratedFiles
	assert.Error(t, files.Scan(42))
}

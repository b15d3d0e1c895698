package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_ButtonPromptWithReactLanguage(t *testing.T) {
	result := Mock(Request{
		Prompt:    "Create a button component",
		Language:  "React/JSX",
		Framework: "React",
	})

	require.Len(t, result.Files, 1)
	assert.Equal(t, "Button.jsx", result.Files[0].Filename)
	assert.Contains(t, result.Files[0].Content, "export default function Button")
	assert.Equal(t, "React/JSX", result.Files[0].Language)
	assert.NotEmpty(t, result.Explanation)
}

func TestMock_ButtonPromptCaseInsensitive(t *testing.T) {
	result := Mock(Request{Prompt: "I need a BUTTON for my form", Language: "TypeScript"})

	require.Len(t, result.Files, 1)
	assert.Equal(t, "Button.ts", result.Files[0].Filename)
}

func TestMock_ButtonPromptOutsideUIFamily(t *testing.T) {
	// "button" only selects the component snippet for the JS/React family
	result := Mock(Request{Prompt: "Create a button component", Language: "Python"})

	require.Len(t, result.Files, 1)
	assert.Equal(t, "main.py", result.Files[0].Filename)
}

func TestMock_GenericPrompt(t *testing.T) {
	result := Mock(Request{Prompt: "Parse a CSV file", Language: "Go"})

	require.Len(t, result.Files, 1)
	assert.Equal(t, "main.go", result.Files[0].Filename)
	assert.Contains(t, result.Files[0].Content, "Parse a CSV file")
	assert.NotEmpty(t, result.Explanation)
}

func TestMock_UnknownLanguageFallsBackToTxt(t *testing.T) {
	result := Mock(Request{Prompt: "Do something", Language: "Brainfuck"})

	require.Len(t, result.Files, 1)
	assert.True(t, strings.HasSuffix(result.Files[0].Filename, ".txt"))
}

func TestMock_Deterministic(t *testing.T) {
	req := Request{Prompt: "Create a button component", Language: "React/JSX"}

	first := Mock(req)
	second := Mock(req)

	assert.Equal(t, first, second)
}

func TestExtensionFor(t *testing.T) {
	cases := map[string]string{
		"JavaScript": "js",
		"TypeScript": "ts",
		"React/JSX":  "jsx",
		"React/TSX":  "tsx",
		"Python":     "py",
		"Go":         "go",
		"Java":       "java",
		"Rust":       "rs",
		"HTML":       "html",
		"CSS":        "css",
		"COBOL":      "txt",
	}

	for language, expected := range cases {
		assert.Equal(t, expected, extensionFor(language), "language %q", language)
	}
}

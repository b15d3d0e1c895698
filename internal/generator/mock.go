package generator

import (
	"fmt"
	"strings"
)

// maps requested languages to file extensions for the mock path
var languageExtensions = []struct {
	keyword   string
	extension string
}{
	{"tsx", "tsx"},
	{"jsx", "jsx"},
	{"react", "jsx"},
	{"typescript", "ts"},
	{"javascript", "js"},
	{"python", "py"},
	{"golang", "go"},
	{"go", "go"},
	{"java", "java"},
	{"rust", "rs"},
	{"ruby", "rb"},
	{"php", "php"},
	{"c#", "cs"},
	{"html", "html"},
	{"css", "css"},
}

const mockButtonComponent = `import React from 'react';

export default function Button({ label, onClick }) {
  return (
    <button className="btn" onClick={onClick}>
      {label}
    </button>
  );
}
`

// returns a deterministic result derived purely from the request.
// Serves as the degraded path for every provider failure mode.
func Mock(req Request) *Result {
	ext := extensionFor(req.Language)

	if strings.Contains(strings.ToLower(req.Prompt), "button") && isUIFamily(req.Language) {
		return &Result{
			Files: []File{{
				Filename: "Button." + ext,
				Content:  mockButtonComponent,
				Language: req.Language,
			}},
			Explanation: "A reusable button component with a label and click handler. " +
				"Generated without the AI provider; configure an API key for richer output.",
		}
	}

	content := fmt.Sprintf(`// Generated placeholder for: %s

function main() {
  // implement your logic here
  console.log("Hello from codeforge");
}
`, req.Prompt)

	return &Result{
		Files: []File{{
			Filename: "main." + ext,
			Content:  content,
			Language: req.Language,
		}},
		Explanation: fmt.Sprintf("A %s starting point for: %s. "+
			"Generated without the AI provider; configure an API key for richer output.",
			req.Language, req.Prompt),
	}
}

// picks a file extension for the requested language
func extensionFor(language string) string {
	lower := strings.ToLower(language)

	for _, entry := range languageExtensions {
		if strings.Contains(lower, entry.keyword) {
			return entry.extension
		}
	}

	return "txt"
}

// reports whether the language belongs to the JavaScript/React family
func isUIFamily(language string) bool {
	lower := strings.ToLower(language)

	return strings.Contains(lower, "react") ||
		strings.Contains(lower, "jsx") ||
		strings.Contains(lower, "tsx") ||
		strings.Contains(lower, "javascript") ||
		strings.Contains(lower, "typescript")
}

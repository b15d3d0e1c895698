package generator

import "context"

// describes a single generation request, already validated by the handler
type Request struct {
	Prompt    string
	Language  string
	Framework string
}

// one file in a generation result
type File struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// Result is the adapter's output. It is always well-formed: Files is
// non-empty and Explanation is non-empty, whether the provider answered
// or the deterministic mock filled in.
type Result struct {
	Files       []File `json:"files"`
	Explanation string `json:"explanation"`
}

// Generator produces a result for every request. Implementations must
// not fail outward; provider failures degrade to a usable result.
type Generator interface {
	Generate(ctx context.Context, req Request) *Result
}

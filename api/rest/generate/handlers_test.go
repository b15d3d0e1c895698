package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codeforge/server/codeforge/generations"
	"github.com/codeforge/server/internal/generator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements CodeGenerator for testing
type mockGenerator struct {
	called bool
	result *generator.Result
}

func (m *mockGenerator) Generate(_ context.Context, req generator.Request) *generator.Result {
	m.called = true

	if m.result != nil {
		return m.result
	}

	return generator.Mock(req)
}

// implements GenerationCreator for testing
type mockCreator struct {
	called bool
	err    error
	last   generations.CreateParams
}

func (m *mockCreator) Create(_ context.Context, params generations.CreateParams) (*generations.Generation, error) {
	m.called = true
	m.last = params

	if m.err != nil {
		return nil, m.err
	}

	return &generations.Generation{
		ID:            "gen-1",
		Prompt:        params.Prompt,
		Language:      params.Language,
		GeneratedCode: params.GeneratedCode,
		Explanation:   params.Explanation,
		CreatedAt:     time.Now(),
	}, nil
}

func performGenerate(gen CodeGenerator, repo GenerationCreator, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/generate", Handler(gen, repo))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestHandler_Success(t *testing.T) {
	gen := &mockGenerator{}
	repo := &mockCreator{}

	w := performGenerate(gen, repo, `{"prompt":"Parse a CSV file","language":"Go"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "gen-1", resp.ID)
	assert.NotEmpty(t, resp.Files)
	assert.NotEmpty(t, resp.Explanation)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.True(t, repo.called)
}

func TestHandler_ButtonPromptWithoutProviderKey(t *testing.T) {
	// mockGenerator delegates to the real mock path, the same shape an
	// unconfigured provider produces
	gen := &mockGenerator{}
	repo := &mockCreator{}

	w := performGenerate(gen, repo,
		`{"prompt":"Create a button component","language":"React/JSX","framework":"React"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Files)
	assert.Equal(t, "Button.jsx", resp.Files[0].Filename)
}

func TestHandler_OversizedPromptRejectedBeforeGeneration(t *testing.T) {
	gen := &mockGenerator{}
	repo := &mockCreator{}

	body := `{"prompt":"` + strings.Repeat("a", 501) + `","language":"Go"}`

	w := performGenerate(gen, repo, body)

	require.Equal(t, http.StatusBadRequest, w.Code)

	// validation short-circuits: neither the adapter nor the gateway runs
	assert.False(t, gen.called)
	assert.False(t, repo.called)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["message"])
	assert.NotEmpty(t, resp["errors"])
}

func TestHandler_MissingLanguageRejected(t *testing.T) {
	w := performGenerate(&mockGenerator{}, &mockCreator{}, `{"prompt":"hello"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_StorageFailureReturns500(t *testing.T) {
	gen := &mockGenerator{}
	repo := &mockCreator{err: errors.New("connection refused")}

	w := performGenerate(gen, repo, `{"prompt":"Parse a CSV file","language":"Go"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate code", resp["message"])
}

func TestHandler_GeneratedFilesReachTheGateway(t *testing.T) {
	gen := &mockGenerator{result: &generator.Result{
		Files:       []generator.File{{Filename: "x.py", Content: "pass", Language: "python"}},
		Explanation: "A stub",
	}}
	repo := &mockCreator{}

	w := performGenerate(gen, repo, `{"prompt":"stub","language":"Python"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, repo.last.GeneratedCode, 1)
	assert.Equal(t, "x.py", repo.last.GeneratedCode[0].Filename)
	assert.Equal(t, "A stub", repo.last.Explanation)
}

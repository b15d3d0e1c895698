package generations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gens "github.com/codeforge/server/codeforge/generations"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements Reader for testing
type mockReader struct {
	records   []gens.Generation
	err       error
	lastLimit int
}

func (m *mockReader) List(_ context.Context, limit int, _ string) ([]gens.Generation, error) {
	m.lastLimit = limit

	if m.err != nil {
		return nil, m.err
	}

	if limit < len(m.records) {
		return m.records[:limit], nil
	}

	return m.records, nil
}

func (m *mockReader) Get(_ context.Context, id string) (*gens.Generation, error) {
	if m.err != nil {
		return nil, m.err
	}

	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}

	return nil, gens.ErrNotFound
}

func performList(repo Reader, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/generations", ListHandler(repo))
	router.GET("/api/generations/:id", GetHandler(repo))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func sampleRecords() []gens.Generation {
	framework := "React"
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	return []gens.Generation{
		{ID: "g3", Prompt: "third", Language: "Go", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "g2", Prompt: "second", Language: "React/JSX", Framework: &framework, CreatedAt: base.Add(time.Hour)},
		{ID: "g1", Prompt: "first", Language: "Python",
			GeneratedCode: gens.GeneratedFiles{{Filename: "main.py", Content: "pass", Language: "python"}},
			Explanation:   "A stub", CreatedAt: base},
	}
}

func TestListHandler_ReturnsSummariesNewestFirst(t *testing.T) {
	repo := &mockReader{records: sampleRecords()}

	w := performList(repo, "/api/generations")

	require.Equal(t, http.StatusOK, w.Code)

	var summaries []Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))

	require.Len(t, summaries, 3)
	assert.Equal(t, "g3", summaries[0].ID)
	assert.Equal(t, "g1", summaries[2].ID)

	// summaries never carry the generated files
	assert.NotContains(t, w.Body.String(), "main.py")
}

func TestListHandler_LimitQueryReachesTheGateway(t *testing.T) {
	repo := &mockReader{records: sampleRecords()}

	w := performList(repo, "/api/generations?limit=2")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, repo.lastLimit)

	var summaries []Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 2)
}

func TestListHandler_GatewayFailureReturns500(t *testing.T) {
	repo := &mockReader{err: errors.New("connection refused")}

	w := performList(repo, "/api/generations")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to fetch generations", resp["message"])
}

func TestGetHandler_ReturnsDetail(t *testing.T) {
	repo := &mockReader{records: sampleRecords()}

	w := performList(repo, "/api/generations/g1")

	require.Equal(t, http.StatusOK, w.Code)

	var detail Detail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))

	assert.Equal(t, "g1", detail.ID)
	require.Len(t, detail.Files, 1)
	assert.Equal(t, "main.py", detail.Files[0].Filename)
	assert.Equal(t, "A stub", detail.Explanation)
	assert.Contains(t, w.Body.String(), `"createdAt"`)
}

func TestGetHandler_MissingRecordReturns404(t *testing.T) {
	repo := &mockReader{records: sampleRecords()}

	w := performList(repo, "/api/generations/nope")

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Generation not found", resp["message"])
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty falls back to default", "", defaultLimit},
		{"valid value", "25", 25},
		{"junk falls back to default", "abc", defaultLimit},
		{"zero falls back to default", "0", defaultLimit},
		{"negative falls back to default", "-3", defaultLimit},
		{"capped at the maximum", "5000", maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLimit(tt.raw))
		})
	}
}

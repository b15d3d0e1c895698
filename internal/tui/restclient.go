package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeout for API requests; generation itself may take up to the
// provider timeout, so leave headroom
const apiRequestTimeout = 60 * time.Second

const defaultHistoryLimit = 50

// manages HTTP requests to the codeforge REST API
type APIClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new API client, reading the endpoint from the environment
func NewAPIClient() *APIClient {
	endpoint := os.Getenv("CODEFORGE_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &APIClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: apiRequestTimeout,
		},
	}
}

// fetches recent generation summaries
func (c *APIClient) ListGenerations(ctx context.Context, limit int) ([]generationSummary, error) {
	url := fmt.Sprintf("%s/api/generations?limit=%d", c.endpoint, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var summaries []generationSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return summaries, nil
}

// fetches a single generation with its files and explanation
func (c *APIClient) GetGeneration(ctx context.Context, id string) (*generationDetail, error) {
	url := fmt.Sprintf("%s/api/generations/%s", c.endpoint, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var detail generationDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &detail, nil
}

// submits a generation request and returns the created record
func (c *APIClient) Generate(ctx context.Context, prompt, language, framework string) (*generationDetail, error) {
	payload := generateRequest{
		Prompt:    prompt,
		Language:  language,
		Framework: framework,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// the generate response omits the echo of the request, so fill it in
	detail := &generationDetail{
		ID:          resp.ID,
		Prompt:      prompt,
		Language:    language,
		Files:       resp.Files,
		Explanation: resp.Explanation,
		CreatedAt:   resp.CreatedAt,
	}

	if framework != "" {
		detail.Framework = &framework
	}

	return detail, nil
}

// do sends the request and returns the body, translating error responses
func (c *APIClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%s", errResp.Message)
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return body, nil
}

// returns a tea.Cmd that fetches the history list
func (c *APIClient) ListCmd(limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiRequestTimeout)
		defer cancel()

		summaries, err := c.ListGenerations(ctx, limit)
		if err != nil {
			return APIErrorMsg{err: err}
		}

		return GenerationsLoadedMsg{generations: summaries}
	}
}

// returns a tea.Cmd that fetches one generation
func (c *APIClient) GetCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiRequestTimeout)
		defer cancel()

		detail, err := c.GetGeneration(ctx, id)
		if err != nil {
			return APIErrorMsg{err: err}
		}

		return GenerationLoadedMsg{generation: detail}
	}
}

// returns a tea.Cmd that submits a generation request
func (c *APIClient) GenerateCmd(prompt, language, framework string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiRequestTimeout)
		defer cancel()

		detail, err := c.Generate(ctx, prompt, language, framework)
		if err != nil {
			return APIErrorMsg{err: err}
		}

		return GenerationLoadedMsg{generation: detail}
	}
}

// REST API request/response types

type generateRequest struct {
	Prompt    string `json:"prompt"`
	Language  string `json:"language"`
	Framework string `json:"framework,omitempty"`
}

type generateResponse struct {
	ID          string           `json:"id"`
	Files       []generationFile `json:"files"`
	Explanation string           `json:"explanation"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type generationSummary struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Language  string    `json:"language"`
	Framework *string   `json:"framework,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type generationFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

type generationDetail struct {
	ID          string           `json:"id"`
	Prompt      string           `json:"prompt"`
	Language    string           `json:"language"`
	Framework   *string          `json:"framework,omitempty"`
	Files       []generationFile `json:"files"`
	Explanation string           `json:"explanation"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type apiErrorResponse struct {
	Message string `json:"message"`
}

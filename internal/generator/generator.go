package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/codeforge/server/internal/logger"
)

// bounds the provider call; past this the request proceeds via the mock
const providerTimeout = 30 * time.Second

// Service is the generation provider adapter. It absorbs every provider
// failure mode (missing credential, timeout, bad status, malformed or
// incomplete JSON) by substituting the deterministic mock, so callers
// never have to special-case an unavailable provider.
type Service struct {
	client *OpenAIClient // nil when no credential is configured
}

// creates an adapter. An empty API key is not an error: it routes every
// request to the mock path.
func New(apiKey, model string) *Service {
	if apiKey == "" {
		logger.Warn("no OpenAI API key configured, using mock generation")
		return &Service{}
	}

	return &Service{
		client: NewOpenAIClient(OpenAIConfig{APIKey: apiKey, Model: model}),
	}
}

// produces a result for the request, degrading to the mock on any
// provider failure. Never returns an error.
func (s *Service) Generate(ctx context.Context, req Request) *Result {
	if s.client == nil {
		return Mock(req)
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	result, err := s.generateWithProvider(ctx, req)
	if err != nil {
		// deliberate: no retry before falling back
		logger.Warn("provider generation failed, falling back to mock",
			"language", req.Language,
			"error", err,
		)

		return Mock(req)
	}

	return result
}

// calls the provider and validates the response shape
func (s *Service) generateWithProvider(ctx context.Context, req Request) (*Result, error) {
	content, err := s.client.Complete(ctx, buildSystemPrompt(), buildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse provider response as JSON: %w", err)
	}

	if len(result.Files) == 0 {
		return nil, fmt.Errorf("provider response contains no files")
	}

	if result.Explanation == "" {
		return nil, fmt.Errorf("provider response missing explanation")
	}

	return &result, nil
}

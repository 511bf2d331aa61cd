package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Yofukashi625/fangyang-wiki-app/config"

	"github.com/google/generative-ai-go/genai"
)

// generateJSON runs a Gemini generation constrained to a JSON response
// schema and returns the raw JSON bytes of the first text part. The shared
// model is copied per call so the JSON generation config never leaks into
// other requests.
func generateJSON(ctx context.Context, schema *genai.Schema, parts ...genai.Part) ([]byte, error) {
	if config.GeminiClient == nil {
		return nil, fmt.Errorf("gemini client is not initialized")
	}

	model := *config.GeminiClient
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no result")
	}

	textPart, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("gemini response is not text")
	}

	// Belt and braces: some model versions still fence the payload.
	cleanJSON := strings.Trim(string(textPart), "```json \n")
	return []byte(cleanJSON), nil
}

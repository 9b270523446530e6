package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"homescout/internal/config"
	"homescout/internal/model"
	"homescout/internal/utils"
)

// OpenAIClient handles OpenAI-compatible chat API interactions for filter
// extraction and summary generation.
type OpenAIClient struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI-compatible client.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready.
func (c *OpenAIClient) IsEnabled() bool {
	return c != nil && c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request.
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage represents a single message in the conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat specifies the format of the response.
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// ChatCompletionResponse represents the API response.
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// ChatCompletion performs a chat completion request.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.IsEnabled() {
		return nil, fmt.Errorf("OpenAI API is not enabled (missing API key)")
	}

	if req.Model == "" {
		req.Model = c.config.ChatModel
	}
	if req.Temperature == 0 && c.config.ChatTemperature > 0 {
		req.Temperature = c.config.ChatTemperature
	}
	if req.MaxTokens == 0 && c.config.ChatMaxTokens > 0 {
		req.MaxTokens = c.config.ChatMaxTokens
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

const extractFiltersPrompt = `You are an NLU agent for an Indian real estate search assistant. Parse the user's natural language query into structured filters.

Extract the following fields if present:
- city: city name, e.g. "Pune", "Mumbai", "Dombivli" (string)
- bhk: requested BHK configurations as an array of strings, e.g. ["2", "3"] for "2 or 3 BHK" (array)
- min_budget: minimum budget in rupees (number)
- max_budget: maximum budget in rupees (number)
- project_name: project name or partial project name the user mentioned (string)
- locality: locality or neighbourhood name, e.g. "Mundhwa", "Chembur" (string)
- readiness: possession readiness, e.g. "Ready to move", "Under construction" (string)

Important rules:
- Respond ONLY with valid JSON
- If a field is not mentioned, omit it
- Convert vague budgets to rupees: "1.2 Cr" = 12000000, "80 lakh" = 8000000, "50L" = 5000000
- "under X" / "below X" sets max_budget; "above X" / "starting X" sets min_budget

Examples:
Query: "3BHK in Pune under 1.2 Cr ready to move"
Response: {"city": "Pune", "bhk": ["3"], "max_budget": 12000000, "readiness": "Ready to move"}

Query: "2 or 3 bhk near Mundhwa between 60 and 90 lakhs"
Response: {"bhk": ["2", "3"], "locality": "Mundhwa", "min_budget": 6000000, "max_budget": 9000000}

Query: "flats in Godrej Park Ridge"
Response: {"project_name": "Godrej Park Ridge"}`

// ExtractFilters asks the model to turn a free-text query into a structured
// filter object.
func (c *OpenAIClient) ExtractFilters(ctx context.Context, query string) (*model.Filters, error) {
	req := ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: extractFiltersPrompt},
			{Role: "user", Content: query},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	resp, err := c.ChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	var filters model.Filters
	if err := utils.ParseModelJSON(resp.Choices[0].Message.Content, &filters); err != nil {
		return nil, fmt.Errorf("failed to parse filter JSON: %w", err)
	}
	return &filters, nil
}

// GenerateSummary asks the model to write a short result summary from a
// pre-built prompt.
func (c *OpenAIClient) GenerateSummary(ctx context.Context, prompt string) (string, error) {
	req := ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: "You summarize property search results for home buyers. Respond only with the summary text, as a concise 5-point list."},
			{Role: "user", Content: prompt},
		},
	}

	resp, err := c.ChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return resp.Choices[0].Message.Content, nil
}

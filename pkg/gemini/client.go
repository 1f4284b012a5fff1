package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// ProductDetails is the enrichment content the model must produce.
type ProductDetails struct {
	Highlights      []string          `json:"highlights"`
	Specifications  map[string]string `json:"specifications"`
	LongDescription string            `json:"longDescription"`
}

// Client calls the Generative Language REST API. One best-effort attempt per
// request, no retries; the caller decides what a failure means.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Gemini client for the given model.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, model, baseURL string) *Client {
	c := NewClient(apiKey, model)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateProductDetails asks the model for highlights, specifications and a
// long description, demanding pure JSON output.
func (c *Client) GenerateProductDetails(name, category, description string) (*ProductDetails, error) {
	prompt := fmt.Sprintf(`You are an expert e-commerce product content writer.

Product name: %s
Category: %s
Basic description: %s

Generate the following in JSON format ONLY:

{
  "highlights": [5 short bullet points],
  "specifications": {
    "Specification name": "value"
  },
  "longDescription": "Detailed SEO-friendly paragraph"
}

Rules:
- Do not include markdown
- Do not include explanations
- Output pure JSON only
`, name, category, description)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read generation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation request returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("generation response contained no candidates")
	}

	text := stripCodeFence(parsed.Candidates[0].Content.Parts[0].Text)
	var details ProductDetails
	if err := json.Unmarshal([]byte(text), &details); err != nil {
		return nil, fmt.Errorf("model output was not valid JSON: %w", err)
	}
	return &details, nil
}

// stripCodeFence tolerates models that wrap the JSON in a markdown fence
// despite the prompt's rules.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

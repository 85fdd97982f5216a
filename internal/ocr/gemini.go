package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hctsai/lunchgo/internal/group"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

	menuPrompt = "You are a menu parsing assistant. Analyze the provided image of a food menu. " +
		"Extract all food items and their prices. " +
		"Return ONLY a raw JSON array of objects with keys 'name' (string) and 'price' (integer). " +
		"Do not include markdown formatting (```json). " +
		"Ignore section headers or non-food text."
)

// MenuParser extracts menu items from a photo via the Gemini vision API.
type MenuParser struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewMenuParser creates a parser using the given API key.
func NewMenuParser(apiKey string) *MenuParser {
	return &MenuParser{
		apiKey:  apiKey,
		baseURL: geminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Parse sends the image to the vision model and decodes the returned item
// list. The model is asked for raw JSON but sometimes wraps it in markdown
// fences anyway; those are stripped.
func (p *MenuParser) Parse(ctx context.Context, image []byte, mimeType string) ([]group.MenuItem, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: menuPrompt},
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"?key="+p.apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned %d: %s", resp.StatusCode, body)
	}

	var decoded geminiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	text := decoded.Candidates[0].Content.Parts[0].Text
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var items []group.MenuItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return items, nil
}

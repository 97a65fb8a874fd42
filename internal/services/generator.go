package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// GenerationRequest describes a piece of marketing copy the admin
// wants drafted: a topic, the content type (newsletter, social post,
// invitation, fundraising appeal) and the tone.
type GenerationRequest struct {
	Topic string `json:"topic"`
	Type  string `json:"type"`
	Tone  string `json:"tone"`
}

const generationErrorText = "Error generating content. Please check your API key or try again later."

var generatorHTTP = &http.Client{Timeout: 30 * time.Second}

// GenerateMarketingContent asks the Gemini API for a draft in the
// association's voice. On any failure it returns the error sentence as
// the generated text instead of an error, so the dashboard always has
// something to display.
func GenerateMarketingContent(ctx context.Context, req GenerationRequest) string {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return generationErrorText
	}

	prompt := fmt.Sprintf(`You are the Communications Director for MSVOSA (The Old Students Association).
Task: Write a %s.
Topic: %s.
Tone: %s.

Requirements:
- Keep it engaging and relevant to former students.
- Highlight the values of unity, pride, and contribution.
- Use the association name 'MSVOSA' where appropriate.
- If it's an event, mention networking opportunities.
- If it's fundraising, mention the scholarship fund.
- Format with clear paragraphs. Do not use Markdown headings like ##.`,
		req.Type, req.Topic, req.Tone)

	body, err := json.Marshal(map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{"temperature": 0.7},
	})
	if err != nil {
		return generationErrorText
	}

	endpoint := "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent?key=" + apiKey
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return generationErrorText
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := generatorHTTP.Do(httpReq)
	if err != nil {
		log.Println("❌ Gemini API error:", err)
		return generationErrorText
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("❌ Gemini API status:", resp.Status)
		return generationErrorText
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return generationErrorText
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "No content generated."
	}
	return out.Candidates[0].Content.Parts[0].Text
}

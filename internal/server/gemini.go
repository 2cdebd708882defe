package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GeneratedRound is what the generator hands back for a new round.
type GeneratedRound struct {
	AnswerWord string
	ImageBytes []byte
}

// Generator produces the answer word and illustration for a round. Tests
// swap in a fake; production uses the Gemini client below.
type Generator interface {
	Generate(ctx context.Context, theme string, excludedAnswers []string) (GeneratedRound, error)
}

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type geminiClient struct {
	apiKey     string
	textModel  string
	imageModel string
	baseURL    string
	httpClient *http.Client
}

func newGeminiClient(apiKey, textModel, imageModel string) *geminiClient {
	return &geminiClient{
		apiKey:     apiKey,
		textModel:  textModel,
		imageModel: imageModel,
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate runs the two-step round generation: pick a single-word answer for
// the theme (avoiding previous answers), then draw it.
func (c *geminiClient) Generate(ctx context.Context, theme string, excludedAnswers []string) (GeneratedRound, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return GeneratedRound{}, errors.New("Gemini API key is not configured")
	}

	answer, err := c.generateAnswer(ctx, theme, excludedAnswers)
	if err != nil {
		return GeneratedRound{}, err
	}
	image, err := c.generateImage(ctx, theme, answer)
	if err != nil {
		return GeneratedRound{}, err
	}
	return GeneratedRound{AnswerWord: answer, ImageBytes: image}, nil
}

func (c *geminiClient) generateAnswer(ctx context.Context, theme string, excludedAnswers []string) (string, error) {
	prompt := fmt.Sprintf(`We are playing a pictionary game. Choose an answer for the theme %s.

Your response should be of the form:
<answer>

Only add the answer, no other text. The answer should be a single word.

Example:
Pikachu

The previous answers are: %s. Do not use any of these answers.`, theme, strings.Join(excludedAnswers, ", "))

	parsed, err := c.generateContent(ctx, c.textModel, prompt, []string{"TEXT"})
	if err != nil {
		return "", err
	}
	for _, part := range candidateParts(parsed) {
		if text := strings.TrimSpace(part.Text); text != "" {
			return text, nil
		}
	}
	return "", errors.New("Gemini returned no answer text")
}

func (c *geminiClient) generateImage(ctx context.Context, theme, answer string) ([]byte, error) {
	prompt := fmt.Sprintf(`We are playing a pictionary game.
Create an image for the topic %s (the theme of the pictionary is %s, and the topic was chosen from this theme).
It should be a simple, clear drawing of that answer suitable for a pictionary game.
The drawing should have clean lines, recognizable shapes, and be easy to draw.
Focus on the key visual elements that make this answer recognizable.
Do not include any text in the image. The image should look like a drawing on a whiteboard.

Only add the image in your response, no other text.`, answer, theme)

	parsed, err := c.generateContent(ctx, c.imageModel, prompt, []string{"TEXT", "IMAGE"})
	if err != nil {
		return nil, err
	}
	for _, part := range candidateParts(parsed) {
		if part.InlineData == nil || part.InlineData.Data == "" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode Gemini image data: %w", err)
		}
		return decoded, nil
	}
	return nil, errors.New("Gemini returned no image")
}

func (c *geminiClient) generateContent(ctx context.Context, model, prompt string, modalities []string) (*geminiResponse, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{ResponseModalities: modalities},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.New("failed to build Gemini request")
	}

	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.New("failed to build Gemini request")
	}
	req.Header.Set("x-goog-api-key", strings.TrimSpace(c.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("failed to read Gemini response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Gemini request failed (%d)", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.New("failed to parse Gemini response")
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return nil, fmt.Errorf("Gemini error: %s", parsed.Error.Message)
	}
	return &parsed, nil
}

func candidateParts(resp *geminiResponse) []geminiPart {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

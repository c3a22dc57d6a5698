package remarksvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/officialmikal/cbc-edutrac-automation/core"
)

var (
	host     = "https://generativelanguage.googleapis.com"
	endpoint = "/v1beta/models/%s:generateContent"
)

const prompt = "Generate a short, professional teacher remark for a student named %s in %s. " +
	"The student scored %d/100 and their level is %s. " +
	"The tone should be encouraging but accurate for a Kenyan CBC report card. " +
	"Keep it under 15 words."

// geminiService generates remarks with the Gemini API.
type geminiService struct {
	conf   core.GeminiConfig
	client *http.Client
	logger core.Logger
}

var _ core.RemarkService = (*geminiService)(nil)

func NewGeminiService(conf *core.Config, logger core.Logger) *geminiService {
	return &geminiService{
		conf:   conf.Gemini,
		client: &http.Client{Timeout: conf.Gemini.Timeout},
		logger: logger,
	}
}

func (svc geminiService) Generate(ctx context.Context, req core.RemarkRequest) string {
	text, err := svc.generateContent(ctx, fmt.Sprintf(prompt, req.StudentName, req.SubjectName, req.Score, req.Level))
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("generating remark: %v", err), err)
		return core.RemarkFallbackFailed
	}
	if text = strings.TrimSpace(text); text == "" {
		return core.RemarkFallbackEmpty
	}
	return text
}

func (svc geminiService) generateContent(ctx context.Context, text string) (string, error) {
	payload := generateContentRequest{
		Contents:         []content{{Parts: []part{{Text: text}}}},
		GenerationConfig: generationConfig{Temperature: 0.7, TopP: 0.8},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshaling request")
	}

	url := host + fmt.Sprintf(endpoint, svc.conf.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "preparing request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", svc.conf.APIKey)

	res, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling Gemini")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errors.Errorf("Gemini responded %s", res.Status)
	}

	var data generateContentResponse
	if err = json.NewDecoder(res.Body).Decode(&data); err != nil {
		return "", errors.Wrap(err, "decoding response")
	}
	return data.text(), nil
}

type (
	generateContentRequest struct {
		Contents         []content        `json:"contents"`
		GenerationConfig generationConfig `json:"generationConfig"`
	}

	generationConfig struct {
		Temperature float64 `json:"temperature"`
		TopP        float64 `json:"topP"`
	}

	content struct {
		Parts []part `json:"parts"`
	}

	part struct {
		Text string `json:"text"`
	}

	generateContentResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
	}
)

func (r generateContentResponse) text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}

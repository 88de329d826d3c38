// Package llm holds the language model backends used by the chat companion.
package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mindfulness-service/internal/app/config"
	"mindfulness-service/internal/app/contracts"
	"mindfulness-service/internal/pkg/constvars"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	geminiDefaultModel   = "gemini-1.5-flash"
	geminiRoleUser       = "user"
	geminiRoleModel      = "model"
	geminiSafetyBlockMid = "BLOCK_MEDIUM_AND_ABOVE"
	geminiPrimerReply    = "I understand. I'm ready to help."
	maxErrorBodyBytes    = 2048
)

var geminiHarmCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

// GeminiProvider calls the Gemini generateContent endpoint. The system
// instruction is sent as an opening user turn acknowledged by the model, which
// keeps the request valid for models without native system instructions.
type GeminiProvider struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	client      *http.Client
	log         *zap.Logger
}

func NewGeminiProvider(cfg *config.InternalConfig, log *zap.Logger) contracts.ChatProvider {
	timeout := time.Duration(cfg.Chat.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	model := cfg.Chat.GeminiModel
	if model == "" {
		model = geminiDefaultModel
	}

	return &GeminiProvider{
		apiKey:      cfg.Chat.GeminiAPIKey,
		baseURL:     strings.TrimRight(cfg.Chat.GeminiBaseURL, "/"),
		model:       model,
		temperature: cfg.Chat.Temperature,
		client:      &http.Client{Timeout: timeout},
		log:         log,
	}
}

func (g *GeminiProvider) Name() string { return "gemini" }

func (g *GeminiProvider) Configured() bool { return g.apiKey != "" }

// Generate returns the text of the first candidate. An empty candidate is not
// an error; the caller decides what to say instead.
func (g *GeminiProvider) Generate(ctx context.Context, in *contracts.ChatGenerateInput) (*contracts.ChatGenerateOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.log.Info("GeminiProvider.Generate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("message_count", len(in.Messages)),
	)

	body, err := json.Marshal(g.buildRequest(in))
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(respBody) > maxErrorBodyBytes {
			respBody = respBody[:maxErrorBodyBytes]
		}
		return nil, fmt.Errorf("gemini: API returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("gemini: parse response: %w", err)
	}

	g.log.Info("GeminiProvider.Generate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("candidate_count", len(result.Candidates)),
	)
	return &contracts.ChatGenerateOutput{Reply: result.firstText()}, nil
}

func (g *GeminiProvider) buildRequest(in *contracts.ChatGenerateInput) geminiRequest {
	contents := make([]geminiContent, 0, len(in.Messages)+2)
	if in.SystemInstruction != "" {
		contents = append(contents,
			geminiContent{Role: geminiRoleUser, Parts: []geminiPart{{Text: in.SystemInstruction}}},
			geminiContent{Role: geminiRoleModel, Parts: []geminiPart{{Text: geminiPrimerReply}}},
		)
	}
	for _, message := range in.Messages {
		role := geminiRoleUser
		if message.Role == constvars.ChatRoleAssistant || message.Role == geminiRoleModel {
			role = geminiRoleModel
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: message.Content}}})
	}

	safetySettings := make([]geminiSafetySetting, 0, len(geminiHarmCategories))
	for _, category := range geminiHarmCategories {
		safetySettings = append(safetySettings, geminiSafetySetting{Category: category, Threshold: geminiSafetyBlockMid})
	}

	return geminiRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     g.temperature,
			MaxOutputTokens: 256,
			TopP:            0.95,
		},
		SafetySettings: safetySettings,
	}
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
	SafetySettings   []geminiSafetySetting  `json:"safetySettings"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (r geminiResponse) firstText() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	applog "agroconnect/internal/log"
	"agroconnect/internal/openrouter"
)

const (
	chatSystemPrompt = "You are AgroBot, a friendly agricultural assistant for AgroConnect marketplace. " +
		"Help users with farming questions, product information, and cooking tips. Keep responses concise and helpful."
	DefaultAnalysisPrompt = "Analyze this agricultural image briefly: 1) Crop type, 2) Health status, " +
		"3) Growth stage, 4) Visible issues, 5) Recommendations. Be concise."
	NoReply = "Sorry, I could not generate a response."

	minAnalysisLen = 10
)

// Messages returned to chat clients.
const (
	MsgPromptRequired = "Prompt is required"
	MsgNoAPIKey       = "API key not configured. Please check your OpenRouter API key."
	MsgChatFailed     = "Failed to process chat request"
)

var errImageRequired = errors.New("image data is required")

// Fallback analyses returned instead of an error.
const (
	fallbackNoKey = `Demo Analysis Results:

1) Crop Type: Unable to determine without AI vision (demo mode)
2) Health Status: Requires OpenRouter API key for assessment
3) Growth Stage: Analysis pending API configuration
4) Visible Issues: Demo mode - no real analysis performed
5) Recommendations: Configure the OPENROUTER_API_KEY setting on the server

This is a demonstration response. To get real AI-powered image analysis, set an OpenRouter API key for the server.`

	fallbackUpstreamStatus = `Demo Analysis Results:

1) Crop Type: Unable to determine - API error (%d)
2) Health Status: Requires AI vision analysis
3) Growth Stage: Analysis pending due to API issue
4) Visible Issues: API connection problem
5) Recommendations: Check OpenRouter API key and model availability

Note: This is a demo response due to API error. Please verify the OpenRouter API key configuration.`

	fallbackUnparsable = `Demo Analysis Results:

1) Crop Type: Unable to determine - response parsing failed
2) Health Status: Analysis data corrupted
3) Growth Stage: Unable to assess - invalid response format
4) Visible Issues: Response parsing error
5) Recommendations: Check API endpoint and response format

This is a demo response due to response parsing error. Please verify your OpenRouter API configuration.`

	fallbackNoContent = `Demo Analysis Results:

1) Crop Type: Unable to determine - API response format issue
2) Health Status: Analysis data not available in expected format
3) Growth Stage: Unable to assess - response parsing failed
4) Visible Issues: API response structure unexpected
5) Recommendations: Check OpenRouter API configuration and model availability

This is a demo response due to API response parsing issue. Please verify your OpenRouter API key and model access.`

	fallbackTooShort = `Demo Analysis Results:

1) Crop Type: Unable to determine - analysis too brief
2) Health Status: Insufficient analysis data
3) Growth Stage: Unable to assess - minimal response
4) Visible Issues: Analysis incomplete
5) Recommendations: Try with a different image or check API configuration

This is a demo response due to insufficient analysis data. Please verify your OpenRouter API configuration.`

	fallbackProcessing = `Demo Analysis Results:

1) Crop Type: Unable to determine due to processing error
2) Health Status: Analysis failed - please try again
3) Growth Stage: Unable to assess at this time
4) Visible Issues: Processing error occurred
5) Recommendations: Check your internet connection and try again

This is a demonstration response due to a processing error. For real AI-powered image analysis, make sure the OpenRouter API key is configured.`
)

// ChatError is a failed chat turn with the HTTP status the proxy answers with.
type ChatError struct {
	Status  int
	Msg     string
	Details json.RawMessage
}

func (e *ChatError) Error() string { return e.Msg }

// AssistantService fronts the chat and image analysis models.
type AssistantService struct {
	Client      *openrouter.Client
	ChatModel   string
	VisionModel string
}

func NewAssistantService(c *openrouter.Client, chatModel, visionModel string) *AssistantService {
	return &AssistantService{Client: c, ChatModel: chatModel, VisionModel: visionModel}
}

// Chat answers one prompt. Errors are *ChatError.
func (s *AssistantService) Chat(prompt string) (string, error) {
	if !s.Client.Configured() {
		applog.Fail("assistant.chat", openrouter.ErrNoAPIKey, nil)
		return "", &ChatError{Status: 500, Msg: MsgNoAPIKey}
	}
	if strings.TrimSpace(prompt) == "" {
		return "", &ChatError{Status: 400, Msg: MsgPromptRequired}
	}
	body, err := s.Client.Complete("AgroConnect AI Assistant", openrouter.ChatRequest{
		Model: s.ChatModel,
		Messages: []openrouter.Message{
			{Role: "system", Content: chatSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		applog.Fail("assistant.chat", err, nil)
		var se *openrouter.StatusError
		if errors.As(err, &se) {
			return "", &ChatError{Status: 500, Msg: se.Error(), Details: se.Details}
		}
		return "", &ChatError{Status: 500, Msg: MsgChatFailed}
	}
	reply, ok := openrouter.ExtractContent(body)
	if !ok {
		applog.Fail("assistant.chat", errors.New("unparsable completion"), nil)
		return "", &ChatError{Status: 500, Msg: MsgChatFailed}
	}
	if reply == "" {
		reply = NoReply
	}
	return reply, nil
}

// Analyze describes a crop image. It always returns text: upstream problems
// become a numbered demo analysis naming what went wrong.
func (s *AssistantService) Analyze(image, prompt string) string {
	if !s.Client.Configured() {
		applog.Warn("assistant.analyze.no_key", nil)
		return fallbackNoKey
	}
	if strings.TrimSpace(image) == "" {
		applog.Fail("assistant.analyze", errImageRequired, nil)
		return fallbackProcessing
	}
	if strings.TrimSpace(prompt) == "" {
		prompt = DefaultAnalysisPrompt
	}
	body, err := s.Client.Complete("AgroConnect Image Analysis", openrouter.ChatRequest{
		Model: s.VisionModel,
		Messages: []openrouter.Message{{
			Role: "user",
			Content: []openrouter.ContentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &openrouter.ImageURL{URL: image, Detail: "high"}},
			},
		}},
		MaxTokens:   500,
		Temperature: 0.3,
	})
	if err != nil {
		applog.Fail("assistant.analyze", err, nil)
		var se *openrouter.StatusError
		if errors.As(err, &se) {
			return fmt.Sprintf(fallbackUpstreamStatus, se.Code)
		}
		return fallbackProcessing
	}
	content, ok := openrouter.ExtractContent(body)
	if !ok {
		applog.Fail("assistant.analyze", errors.New("unparsable completion"), nil)
		return fallbackUnparsable
	}
	content = strings.TrimSpace(content)
	if content == "" {
		applog.Warn("assistant.analyze.no_content", nil)
		return fallbackNoContent
	}
	if len([]rune(content)) < minAnalysisLen {
		applog.Warn("assistant.analyze.too_short", map[string]any{"content": content})
		return fallbackTooShort
	}
	return content
}

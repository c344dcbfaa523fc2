package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"portfolio-be/internal/models"
)

// completionTimeout bounds a single completion-API round trip. There are no
// retries; a failure surfaces immediately.
const completionTimeout = 30 * time.Second

// fallbackReply is the user-safe text returned whenever the completion API
// cannot be reached or answers with something unusable.
const fallbackReply = "I'm sorry, I'm having trouble right now. Please try again later."

// ChatService relays a user message, prior history, and a system prompt to
// an external chat-completion API and normalizes the outcome.
type ChatService interface {
	Send(message string, history []models.ChatTurn, systemPrompt string) *models.ChatResult
}

type chatService struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
}

// NewChatService creates a new chat service
func NewChatService(baseURL, apiKey, model string, maxTokens int, temperature float64) ChatService {
	return &chatService{
		baseURL:     baseURL,
		apiKey:      apiKey,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		client:      &http.Client{Timeout: completionTimeout},
	}
}

type completionRequest struct {
	Model       string            `json:"model"`
	Messages    []models.ChatTurn `json:"messages"`
	MaxTokens   int               `json:"max_tokens"`
	Temperature float64           `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message models.ChatTurn `json:"message"`
	} `json:"choices"`
	Usage map[string]any `json:"usage"`
}

// Send composes the message list (system prompt, then history, then the new
// user message) and calls the completion API. It never returns an error:
// every failure mode collapses into a structured result carrying the
// fallback reply.
func (s *chatService) Send(message string, history []models.ChatTurn, systemPrompt string) *models.ChatResult {
	messages := make([]models.ChatTurn, 0, len(history)+2)
	if systemPrompt != "" {
		messages = append(messages, models.ChatTurn{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, history...)
	messages = append(messages, models.ChatTurn{Role: "user", Content: message})

	payload, err := json.Marshal(completionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return failure(fmt.Sprintf("request error: %v", err))
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return failure(fmt.Sprintf("request error: %v", err))
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return failure(fmt.Sprintf("request error: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failure(fmt.Sprintf("completion API returned status %d", resp.StatusCode))
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return failure(fmt.Sprintf("response error: %v", err))
	}
	if len(result.Choices) == 0 {
		return failure("response error: no choices returned")
	}

	return &models.ChatResult{
		Success:  true,
		Response: result.Choices[0].Message.Content,
		Usage:    result.Usage,
		Model:    s.model,
	}
}

func failure(detail string) *models.ChatResult {
	return &models.ChatResult{
		Success:  false,
		Error:    detail,
		Response: fallbackReply,
	}
}

// CapHistory trims history to at most max turns, dropping the oldest first.
func CapHistory(history []models.ChatTurn, max int) []models.ChatTurn {
	if max <= 0 || len(history) <= max {
		return history
	}
	return history[len(history)-max:]
}

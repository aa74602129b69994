package llm

import (
	"context"
	"fmt"
	"strings"

	"MindAlchemy/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are a compassionate, empathetic AI guide for MindAlchemy - a therapeutic alchemy platform. You help users transform their mental states through therapeutic alchemy. Your expertise includes:
- Cognitive Behavioral Therapy (CBT)
- Dialectical Behavior Therapy (DBT)
- Mindfulness-based interventions

Your approach:
1. Validate and empathize with the user's feelings
2. Ask thoughtful, therapeutic questions
3. Provide evidence-based coping strategies
4. Guide users through CBT/DBT exercises when appropriate
5. Maintain professional boundaries

Always prioritize user safety. If crisis is detected, provide immediate resources and encourage professional help.

Important: You are a support tool, not a replacement for professional therapy. For severe mental health issues, always encourage users to seek professional help.`

const notConfiguredMessage = "AI service is not configured. Please set LLM_API_KEY in environment variables. Check your .env file."

// Service talks to an OpenAI-compatible completion endpoint (Groq by
// default). An unset API key leaves client nil; every method then degrades
// to an operator-facing message instead of failing the request.
type Service struct {
	client *openai.Client
	model  string
}

func NewService(apiKey, baseURL, model string) *Service {
	s := &Service{model: model}
	if apiKey == "" {
		logger.Warn("LLM API key not configured, AI chat disabled")
		return s
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	s.client = openai.NewClientWithConfig(cfg)
	return s
}

func (s *Service) Configured() bool { return s.client != nil }

func (s *Service) Chat(ctx context.Context, history []Message, userMessage string, primaryConcern string) string {
	if s.client == nil {
		return notConfiguredMessage
	}

	prompt := systemPrompt
	if primaryConcern != "" {
		prompt += fmt.Sprintf("\n\nUser's primary concern: %s", primaryConcern)
	}

	conversation := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	conversation = append(conversation, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleSystem, Content: prompt,
	})
	for _, m := range history {
		if m.Role == "" || m.Content == "" {
			continue
		}
		conversation = append(conversation, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	conversation = append(conversation, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: userMessage,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    conversation,
		Temperature: 0.7,
		MaxTokens:   500,
		TopP:        0.9,
	})
	if err != nil {
		logger.Error("LLM chat completion failed", zap.Error(err))
		return fallbackFor(err)
	}
	if len(resp.Choices) == 0 {
		logger.Error("LLM returned no choices")
		return "I'm having trouble processing that right now. Please try again in a moment."
	}
	return resp.Choices[0].Message.Content
}

func (s *Service) Sentiment(ctx context.Context, text string) string {
	if s.client == nil {
		return "neutral"
	}
	prompt := fmt.Sprintf(`Analyze the sentiment of this text and respond with only one word:
positive, negative, neutral, anxious, depressed, or angry.

Text: %s`, text)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		Temperature: 0.3,
		MaxTokens:   10,
	})
	if err != nil || len(resp.Choices) == 0 {
		return "neutral"
	}
	return strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
}

func (s *Service) SessionSummary(ctx context.Context, history []Message) string {
	if s.client == nil {
		return "Summary unavailable - AI service not configured."
	}
	if len(history) < 2 {
		return "Session too short to generate summary."
	}

	var sb strings.Builder
	for _, m := range history {
		if m.Content == "" {
			continue
		}
		sb.WriteString(m.Role)
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	conversation := sb.String()
	if len(conversation) > 2000 {
		conversation = conversation[:2000]
	}

	prompt := fmt.Sprintf(`Generate a concise, professional summary of this therapy session conversation.
Focus on:
1. Main topics discussed
2. Key concerns or issues raised
3. Coping strategies or advice provided
4. Overall sentiment and progress

Keep it to 3-4 sentences maximum.

Conversation:
%s

Summary:`, conversation)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		Temperature: 0.5,
		MaxTokens:   200,
	})
	if err != nil || len(resp.Choices) == 0 {
		logger.Error("session summary generation failed", zap.Error(err))
		return "Summary generation failed. Please try again later."
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

const insightsFallback = "Continue tracking your mental health journey. Every entry helps build a clearer picture of your patterns and progress."

func (s *Service) Insights(ctx context.Context, digest string) string {
	if s.client == nil {
		return insightsFallback
	}

	prompt := fmt.Sprintf(`Analyze this user's mental health data and provide insights about patterns, trends, and recommendations.

%s

Please provide:
1. Key patterns you notice
2. Positive trends
3. Areas of concern
4. Personalized recommendations
5. Overall assessment (2-3 sentences)

Keep each insight concise (1-2 sentences max). Be supportive and constructive.`, digest)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a mental health data analyst. Be supportive and constructive."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.5,
		MaxTokens:   800,
	})
	if err != nil || len(resp.Choices) == 0 {
		logger.Error("insights generation failed", zap.Error(err))
		return insightsFallback
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// fallbackFor maps provider errors onto messages safe to show a user, with
// enough of a hint for the operator reading them over the user's shoulder.
func fallbackFor(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api_key"), strings.Contains(msg, "api key"), strings.Contains(msg, "authentication"), strings.Contains(msg, "401"):
		return "AI service authentication failed. Please check your LLM_API_KEY setting."
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "quota"), strings.Contains(msg, "429"):
		return "AI service is currently busy. Please wait a moment and try again."
	case strings.Contains(msg, "model"):
		return "AI model configuration error. Please check your LLM_MODEL setting."
	default:
		return "I'm having trouble processing that right now. Please try again in a moment."
	}
}

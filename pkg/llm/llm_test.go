package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnconfiguredServiceDegrades(t *testing.T) {
	s := NewService("", "", "llama-3.1-8b-instant")
	ctx := context.Background()

	assert.False(t, s.Configured())
	assert.Equal(t, notConfiguredMessage, s.Chat(ctx, nil, "hello", ""))
	assert.Equal(t, "neutral", s.Sentiment(ctx, "I feel terrible"))
	assert.Equal(t, "Summary unavailable - AI service not configured.",
		s.SessionSummary(ctx, []Message{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}}))
	assert.Equal(t, insightsFallback, s.Insights(ctx, "MOOD DATA: none"))
}

func TestSummaryNeedsConversation(t *testing.T) {
	s := NewService("test-key", "http://localhost:1", "llama-3.1-8b-instant")
	got := s.SessionSummary(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.Equal(t, "Session too short to generate summary.", got)
}

func TestFallbackMapping(t *testing.T) {
	cases := []struct {
		err  string
		want string
	}{
		{"invalid api_key provided", "AI service authentication failed. Please check your LLM_API_KEY setting."},
		{"rate limit exceeded", "AI service is currently busy. Please wait a moment and try again."},
		{"model not found", "AI model configuration error. Please check your LLM_MODEL setting."},
		{"connection refused", "I'm having trouble processing that right now. Please try again in a moment."},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fallbackFor(errors.New(tc.err)), tc.err)
	}
}

package llm

import "context"

// Message is a cleaned role/content pair; timestamps and any other session
// bookkeeping never reach the completion API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chatter is the surface the chat flow consumes. Implementations must never
// surface a raw provider error to the caller: every method returns text that
// is safe to show the end user.
type Chatter interface {
	// Chat runs one completion turn over the system prompt, prior history
	// and the new user message.
	Chat(ctx context.Context, history []Message, userMessage string, primaryConcern string) string

	// Sentiment classifies text into one word; "neutral" on any failure.
	Sentiment(ctx context.Context, text string) string

	// SessionSummary produces a short recap of a finished conversation.
	SessionSummary(ctx context.Context, history []Message) string

	// Insights analyzes a tracking-data digest and returns a patterns
	// summary; a static encouragement when the service is unavailable.
	Insights(ctx context.Context, digest string) string

	// Configured reports whether a real API client is wired in.
	Configured() bool
}

// Package llm provides the client for the model-provider sidecar.
package llm

import "context"

// Client is the Go-side interface for calling the LLM sidecar service.
// It wraps the gRPC connection and provides a channel-based streaming API.
type Client interface {
	// Generate sends a conversation to the LLM and returns a stream of chunks.
	// The returned channel is closed when the stream completes.
	// Errors are delivered as ErrorChunk values in the channel.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases the gRPC connection.
	Close() error
}

// GenerateInput is the Go-side representation of a Generate request.
type GenerateInput struct {
	RunID     string
	Messages  []Message
	MaxTokens int
}

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// TextChunk is a delta of the model's text response.
type TextChunk struct{ Content string }

// UsageChunk reports token consumption for this call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int32 }

// ErrorChunk signals an error from the model provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType  { return ChunkTypeText }
func (c *UsageChunk) chunkType() ChunkType { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }

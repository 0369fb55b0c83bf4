package llm

import (
	"context"
	"fmt"
	"io"

	llmv1 "github.com/codeready-toolchain/ranger/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client by calling the LLM sidecar via gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient creates a new gRPC LLM client.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Generate sends a conversation to the LLM and returns a channel of chunks.
func (c *GRPCClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	req := &llmv1.GenerateRequest{
		RunId:     input.RunID,
		Messages:  toProtoMessages(input.Messages),
		MaxTokens: int32(input.MaxTokens),
	}

	stream, err := c.client.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toProtoMessages(msgs []Message) []*llmv1.ConversationMessage {
	out := make([]*llmv1.ConversationMessage, len(msgs))
	for i, m := range msgs {
		out[i] = &llmv1.ConversationMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}
	return out
}

func fromProtoResponse(resp *llmv1.GenerateResponse) Chunk {
	switch c := resp.Content.(type) {
	case *llmv1.GenerateResponse_Text:
		return &TextChunk{Content: c.Text.Content}
	case *llmv1.GenerateResponse_Usage:
		return &UsageChunk{
			InputTokens:  c.Usage.InputTokens,
			OutputTokens: c.Usage.OutputTokens,
			TotalTokens:  c.Usage.TotalTokens,
		}
	case *llmv1.GenerateResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}

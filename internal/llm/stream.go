package llm

import (
	openai "github.com/sashabaranov/go-openai"
)

// Stream is a pull-based sequence of completion chunks. Recv blocks until
// the next chunk arrives and returns io.EOF once the remote endpoint
// closes the stream. Close releases the underlying connection and is safe
// to call before the stream is drained.
type Stream interface {
	Recv() (Chunk, error)
	Close() error
}

type gatewayStream struct {
	stream *openai.ChatCompletionStream
}

func (s *gatewayStream) Recv() (Chunk, error) {
	resp, err := s.stream.Recv()
	if err != nil {
		return Chunk{}, err
	}

	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Delta.Content
	}
	return Chunk{Content: content}, nil
}

func (s *gatewayStream) Close() error {
	return s.stream.Close()
}

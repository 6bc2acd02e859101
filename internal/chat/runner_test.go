package chat

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cursornexus/cursorchat/internal/llm"
	"github.com/cursornexus/cursorchat/internal/progress"
)

// mockClient is a test client that records calls and returns canned
// responses or chunk sequences.
type mockClient struct {
	Calls      []llm.CompletionRequest
	Response   *llm.CompletionResponse
	Chunks     []llm.Chunk
	Err        error
	StreamErr  error
	LastStream *mockStream
}

func newMockClient() *mockClient {
	return &mockClient{
		Response: &llm.CompletionResponse{
			Content:          "Hello",
			Model:            "claude-3.7-sonnet-thinking",
			PromptTokens:     5,
			CompletionTokens: 2,
			TotalTokens:      7,
			FinishReason:     "stop",
		},
	}
}

func (m *mockClient) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func (m *mockClient) CompleteStream(ctx context.Context, req llm.CompletionRequest) (llm.Stream, error) {
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastStream = &mockStream{chunks: m.Chunks, err: m.StreamErr}
	return m.LastStream, nil
}

func (m *mockClient) ListModels(ctx context.Context) ([]llm.Model, error) {
	return nil, nil
}

// mockStream replays a fixed chunk sequence, then the configured error
// or io.EOF.
type mockStream struct {
	chunks []llm.Chunk
	err    error
	pos    int
	closed bool
}

func (s *mockStream) Recv() (llm.Chunk, error) {
	if s.pos >= len(s.chunks) {
		if s.err != nil {
			return llm.Chunk{}, s.err
		}
		return llm.Chunk{}, io.EOF
	}
	chunk := s.chunks[s.pos]
	s.pos++
	return chunk, nil
}

func (s *mockStream) Close() error {
	s.closed = true
	return nil
}

func newTestRunner(client llm.Client, out *bytes.Buffer, diag *bytes.Buffer) *Runner {
	return NewRunner(client, out, diag, &progress.QuietReporter{})
}

func TestRunPrintsContentThenUsage(t *testing.T) {
	mock := newMockClient()
	var out, diag bytes.Buffer
	runner := newTestRunner(mock, &out, &diag)

	err := runner.Run(context.Background(), Options{
		Model:  "claude-3.7-sonnet-thinking",
		Prompt: "hi",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "Hello\n" +
		"--------------------------------------------------\n" +
		"Model: claude-3.7-sonnet-thinking\n" +
		"Completion tokens: 2\n" +
		"Prompt tokens: 5\n" +
		"Total tokens: 7\n"
	if out.String() != want {
		t.Errorf("output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRunSendsSingleUserMessage(t *testing.T) {
	mock := newMockClient()
	var out, diag bytes.Buffer
	runner := newTestRunner(mock, &out, &diag)

	opts := Options{
		Model:  "claude-3.7-sonnet-thinking",
		Prompt: "Explain quantum computing in simple terms.",
	}
	if err := runner.Run(context.Background(), opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected exactly 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Model != opts.Model {
		t.Errorf("request model: got %q, want %q", req.Model, opts.Model)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleUser {
		t.Errorf("message role: got %q, want %q", req.Messages[0].Role, llm.RoleUser)
	}
	if req.Messages[0].Content != opts.Prompt {
		t.Errorf("message content: got %q, want %q", req.Messages[0].Content, opts.Prompt)
	}
}

func TestRunStreamConcatenatesFragments(t *testing.T) {
	mock := newMockClient()
	mock.Chunks = []llm.Chunk{{Content: "Hel"}, {Content: "lo"}}
	var out, diag bytes.Buffer
	runner := newTestRunner(mock, &out, &diag)

	err := runner.Run(context.Background(), Options{
		Model:  "claude-3.7-sonnet-thinking",
		Prompt: "hi",
		Stream: true,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if out.String() != "Hello\n" {
		t.Errorf("output: got %q, want %q", out.String(), "Hello\n")
	}
}

func TestRunStreamSkipsEmptyChunks(t *testing.T) {
	mock := newMockClient()
	mock.Chunks = []llm.Chunk{{Content: "Hel"}, {Content: ""}, {Content: "lo"}, {Content: ""}}
	var out, diag bytes.Buffer
	runner := newTestRunner(mock, &out, &diag)

	err := runner.Run(context.Background(), Options{
		Model:  "claude-3.7-sonnet-thinking",
		Prompt: "hi",
		Stream: true,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if out.String() != "Hello\n" {
		t.Errorf("output: got %q, want %q", out.String(), "Hello\n")
	}
}

func TestRunErrorPrintsNoMetadata(t *testing.T) {
	mock := newMockClient()
	mock.Err = errors.New("connection refused")
	var out, diag bytes.Buffer
	runner := newTestRunner(mock, &out, &diag)

	err := runner.Run(context.Background(), Options{
		Model:  "claude-3.7-sonnet-thinking",
		Prompt: "hi",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.Err) {
		t.Errorf("expected wrapped client error, got %v", err)
	}

	if strings.Contains(out.String(), "Model:") || strings.Contains(out.String(), "tokens:") {
		t.Errorf("metadata printed despite failure:\n%s", out.String())
	}
}

func TestRunStreamMidStreamErrorStopsOutput(t *testing.T) {
	mock := newMockClient()
	mock.Chunks = []llm.Chunk{{Content: "partial"}}
	mock.StreamErr = errors.New("stream reset")
	var out, diag bytes.Buffer
	runner := newTestRunner(mock, &out, &diag)

	err := runner.Run(context.Background(), Options{
		Model:  "claude-3.7-sonnet-thinking",
		Prompt: "hi",
		Stream: true,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.StreamErr) {
		t.Errorf("expected wrapped stream error, got %v", err)
	}

	// Partial fragments may have been written, but no trailing newline
	// and no metadata.
	if strings.HasSuffix(out.String(), "\n") {
		t.Errorf("unexpected trailing newline after stream failure: %q", out.String())
	}
}

func TestRunStreamClosesStream(t *testing.T) {
	mock := newMockClient()
	mock.Chunks = []llm.Chunk{{Content: "hi"}}
	var out, diag bytes.Buffer
	runner := newTestRunner(mock, &out, &diag)

	if err := runner.Run(context.Background(), Options{Model: "m", Prompt: "p", Stream: true}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if mock.LastStream == nil || !mock.LastStream.closed {
		t.Error("runner did not close the stream")
	}
}

func TestVerboseHeaderGoesToDiagnostics(t *testing.T) {
	mock := newMockClient()
	var out, diag bytes.Buffer
	runner := newTestRunner(mock, &out, &diag)

	err := runner.Run(context.Background(), Options{
		Model:   "claude-3.7-sonnet-thinking",
		Prompt:  "hi",
		Verbose: true,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(diag.String(), "Sending request to claude-3.7-sonnet-thinking") {
		t.Errorf("diagnostics missing request header: %q", diag.String())
	}
	if !strings.Contains(diag.String(), "Prompt: hi") {
		t.Errorf("diagnostics missing prompt line: %q", diag.String())
	}
	if strings.Contains(out.String(), "Sending request") {
		t.Errorf("request header leaked to stdout: %q", out.String())
	}
}

func TestNonVerbosePrintsNoHeader(t *testing.T) {
	mock := newMockClient()
	var out, diag bytes.Buffer
	runner := newTestRunner(mock, &out, &diag)

	if err := runner.Run(context.Background(), Options{Model: "m", Prompt: "p"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if diag.Len() != 0 {
		t.Errorf("expected no diagnostics, got %q", diag.String())
	}
}

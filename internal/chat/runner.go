// Package chat performs a single chat-completion call against the gateway
// and renders the result.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cursornexus/cursorchat/internal/llm"
	"github.com/cursornexus/cursorchat/internal/progress"
)

// Options parameterize a single chat invocation.
type Options struct {
	Model   string
	Prompt  string
	Stream  bool
	Verbose bool
}

// Runner issues exactly one completion request and writes the rendered
// response to out. Diagnostics (the request header in verbose mode) go to
// diag so stdout carries only the response itself.
type Runner struct {
	client   llm.Client
	out      io.Writer
	diag     io.Writer
	reporter progress.Reporter
}

// NewRunner creates a Runner writing the response to out and diagnostics
// to diag.
func NewRunner(client llm.Client, out, diag io.Writer, reporter progress.Reporter) *Runner {
	return &Runner{client: client, out: out, diag: diag, reporter: reporter}
}

const separator = "--------------------------------------------------"

// Run sends the prompt described by opts and renders the reply. There is
// no retry and no recovery: any transport or API failure is returned to
// the caller as-is.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if opts.Verbose {
		fmt.Fprintf(r.diag, "Sending request to %s...\n", opts.Model)
		fmt.Fprintf(r.diag, "Prompt: %s\n", opts.Prompt)
		fmt.Fprintln(r.diag, separator)
	}

	req := llm.CompletionRequest{
		Model:    opts.Model,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: opts.Prompt}},
	}

	if opts.Stream {
		return r.runStream(ctx, req)
	}
	return r.runBlocking(ctx, req)
}

func (r *Runner) runBlocking(ctx context.Context, req llm.CompletionRequest) error {
	r.reporter.Start(fmt.Sprintf("Waiting for %s", req.Model))
	resp, err := r.client.Complete(ctx, req)
	r.reporter.Finish()
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}

	fmt.Fprintln(r.out, resp.Content)
	fmt.Fprintln(r.out, separator)
	fmt.Fprintf(r.out, "Model: %s\n", resp.Model)
	fmt.Fprintf(r.out, "Completion tokens: %d\n", resp.CompletionTokens)
	fmt.Fprintf(r.out, "Prompt tokens: %d\n", resp.PromptTokens)
	fmt.Fprintf(r.out, "Total tokens: %d\n", resp.TotalTokens)
	return nil
}

func (r *Runner) runStream(ctx context.Context, req llm.CompletionRequest) error {
	stream, err := r.client.CompleteStream(ctx, req)
	if err != nil {
		return fmt.Errorf("starting stream: %w", err)
	}
	defer stream.Close()

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading stream: %w", err)
		}
		if chunk.Content == "" {
			continue
		}
		fmt.Fprint(r.out, chunk.Content)
	}

	fmt.Fprintln(r.out)
	return nil
}

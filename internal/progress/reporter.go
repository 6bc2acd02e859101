package progress

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides feedback while a request is in flight.
type Reporter interface {
	Start(description string)
	Finish()
}

// NewReporter returns a TerminalReporter for interactive use, or a
// QuietReporter when running in a CI environment.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &QuietReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter shows an indeterminate spinner on stderr and clears
// it once the request completes, so stdout carries only the response.
type TerminalReporter struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

func (r *TerminalReporter) Start(description string) {
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	r.done = make(chan struct{})

	go func() {
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				_ = r.bar.Add(1)
			}
		}
	}()
}

func (r *TerminalReporter) Finish() {
	if r.bar == nil {
		return
	}
	close(r.done)
	_ = r.bar.Finish()
}

// QuietReporter suppresses progress output.
type QuietReporter struct{}

func (r *QuietReporter) Start(string) {}

func (r *QuietReporter) Finish() {}

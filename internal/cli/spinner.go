package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// spinnerInterval is the delay between animation frames.
const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

// Spinner is a single-line progress indicator for CLI steps that block,
// like waiting for the desktop window to initialize. It animates on
// stderr until stopped and erases itself afterwards, so whatever prints
// next starts on a clean line.
type Spinner struct {
	message string
	parent  context.Context

	quit     chan struct{} // closed by Stop
	idle     chan struct{} // closed when the animation goroutine exits
	stopOnce sync.Once
}

// newSpinner creates a new spinner with the given message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that also winds down on its
// own when the context is cancelled, for steps the user can interrupt.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	return &Spinner{
		message: message,
		parent:  ctx,
		quit:    make(chan struct{}),
		idle:    make(chan struct{}),
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	go s.animate()
}

func (s *Spinner) animate() {
	defer close(s.idle)
	for i := 0; ; i++ {
		select {
		case <-s.parent.Done():
			s.erase()
			return
		case <-s.quit:
			return
		case <-time.After(spinnerInterval):
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(os.Stderr, "\r%s %s", styleSpinner.Render(frame), StyleDim.Render(s.message))
		}
	}
}

// Stop ends the animation and clears the line. Calling Stop more than
// once, or after the context already cancelled the spinner, is a no-op.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		<-s.idle
		s.erase()
	})
}

// erase blanks the spinner line. The width accounts for the frame glyph
// and its trailing space.
func (s *Spinner) erase() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", lipgloss.Width(s.message)+2))
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the context tore the spinner down before
// Stop was called.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerDelay is how long a query runs before the spinner shows elapsed time.
const spinnerDelay = time.Second

// Spinner animates a one-line status on stderr while a long query, such as a
// path enumeration over a large clique, runs. It stops on its own when ctx is
// cancelled.
type Spinner struct {
	w       io.Writer
	label   string
	begin   time.Time
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once

	mu    sync.Mutex
	width int // printable width of the last frame
}

// newSpinner creates a spinner that draws label on w until Stop or until ctx
// is cancelled.
func newSpinner(ctx context.Context, w io.Writer, label string) *Spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		label:   label,
		parent:  ctx,
		ctx:     sctx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.begin = time.Now()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(i, time.Since(s.begin))
			}
		}
	}()
}

// frame renders frame i of the animation without styling.
func (s *Spinner) frame(i int, elapsed time.Duration) string {
	line := spinnerFrames[i%len(spinnerFrames)] + " " + s.label
	if elapsed >= spinnerDelay {
		line += fmt.Sprintf(" (%.1fs)", elapsed.Seconds())
	}
	return line
}

func (s *Spinner) draw(i int, elapsed time.Duration) {
	line := s.frame(i, elapsed)
	icon, text, _ := strings.Cut(line, " ")

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(icon), StyleDim.Render(text))
	s.width = max(s.width, len([]rune(line)))
}

// Stop ends the animation and clears the line. It must follow Start and may
// be called more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.done)
		<-s.stopped
		s.clearLine()
		s.cancel()
	})
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	s.width = 0
}

// Elapsed returns the time since Start.
func (s *Spinner) Elapsed() time.Duration {
	if s.begin.IsZero() {
		return 0
	}
	return time.Since(s.begin)
}

// Cancelled reports whether the caller's context ended, as opposed to a
// plain Stop.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

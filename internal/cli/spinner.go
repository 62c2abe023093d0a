package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// spinner animates a one-line status on a terminal while a render runs.
// The animation ends on Stop or when ctx is done, whichever comes first.
type spinner struct {
	out  io.Writer
	msg  string
	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// spin starts a spinner showing msg on out.
func spin(ctx context.Context, out io.Writer, msg string) *spinner {
	s := &spinner{out: out, msg: msg, quit: make(chan struct{})}
	s.wg.Add(1)
	go s.run(ctx)
	return s
}

func (s *spinner) run(ctx context.Context) {
	defer s.wg.Done()
	defer s.clear()

	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()
	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return
		case <-s.quit:
			return
		case <-tick.C:
			r := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(string(r)), StyleDim.Render(s.msg))
		}
	}
}

func (s *spinner) clear() {
	fmt.Fprint(s.out, "\r"+strings.Repeat(" ", len(s.msg)+4)+"\r")
}

// Stop ends the animation and waits until the line is cleared. Later calls
// do nothing.
func (s *spinner) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}

// Fail stops the spinner and prints msg as an error.
func (s *spinner) Fail(msg string) {
	s.Stop()
	printError("%s", msg)
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// withLogger attaches l to ctx. The root command does this before any
// subcommand runs, so --verbose reaches helpers that only see a context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// timed starts a stopwatch. The returned func logs its message at info level
// with the elapsed time appended, e.g. "Placed 12 labels (4ms)".
func timed(l *log.Logger) func(format string, args ...any) {
	start := time.Now()
	return func(format string, args ...any) {
		l.Info(fmt.Sprintf(format, args...) + " (" + time.Since(start).Round(time.Millisecond).String() + ")")
	}
}

package seed

import (
	"fmt"
	"io"
	"os"
)

// Console prints the per-record lines of a run: successes on Out,
// failures on Err.
type Console struct {
	Out io.Writer
	Err io.Writer
}

func NewConsole() *Console {
	return &Console{Out: os.Stdout, Err: os.Stderr}
}

func (c *Console) success(format string, args ...any) {
	_, _ = fmt.Fprintf(c.Out, "✅ "+format+"\n", args...)
}

func (c *Console) failure(format string, args ...any) {
	_, _ = fmt.Fprintf(c.Err, "❌ "+format+"\n", args...)
}

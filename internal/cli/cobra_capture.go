package cli

import (
	"bytes"
	"context"
	"strings"
)

// captureCobraOutput runs a command through the cobra tree and returns its
// output. Forms and spinners are disabled since the TUI owns the screen.
func captureCobraOutput(app *App, args []string) string {
	inner := *app
	inner.IsInteractive = nil

	root := NewRootCmd(&inner)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	if err := root.ExecuteContext(context.Background()); err != nil {
		if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString(shellError(err))
	}
	return buf.String()
}

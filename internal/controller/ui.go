// Package controller provides the user-facing outputs of a duplicate scan.
package controller

import (
	"io"
	"os"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// UI receives the events of a scan. Display methods may be called from the
// scan worker and from the liveness monitor concurrently.
type UI interface {
	Start(cfg m.Config) error
	Close()
	DisplayFileHashed(rec m.FileRecord)
	DisplayFileSkipped(path m.Path, err error)
	DisplayHeartbeat(snapshot m.ProgressSnapshot)
	DisplayNoDuplicates()
	DisplayOutcome(outcome m.Outcome) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

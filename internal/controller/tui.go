package controller

import (
	"fmt"
	"io"
	"strings"
	"sync"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUI implements UI with a Bubble Tea spinner while the scan runs and a
// styled summary once it is over.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	started bool
	stop    sync.Once
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the live progress view.
func (t *TUI) Start(cfg m.Config) error {
	return t.startWithModel(newScanModel(cfg))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the live view if it is still running.
func (t *TUI) Close() {
	t.wait()
}

// wait asks the program to finish and blocks until it has released the
// terminal.
func (t *TUI) wait() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		return
	}

	t.stop.Do(func() {
		t.program.Send(scanDoneMsg{})
		<-t.done
	})
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return
	}

	t.program.Send(msg)
}

// DisplayFileHashed updates the live counters.
func (t *TUI) DisplayFileHashed(rec m.FileRecord) {
	t.send(fileHashedMsg{path: rec.Path, size: rec.Size})
}

// DisplayFileSkipped updates the live counters.
func (t *TUI) DisplayFileSkipped(path m.Path, _ error) {
	t.send(fileSkippedMsg{path: path})
}

// DisplayHeartbeat refreshes the elapsed time shown by the live view.
func (t *TUI) DisplayHeartbeat(snapshot m.ProgressSnapshot) {
	t.send(heartbeatMsg{snapshot: snapshot})
}

// DisplayNoDuplicates stops the live view and reports an empty result.
func (t *TUI) DisplayNoDuplicates() {
	t.wait()

	_, _ = fmt.Fprintln(t.output, okStyle.Render("No duplicate files found!"))
}

// DisplayOutcome stops the live view and prints the report and a styled
// summary.
func (t *TUI) DisplayOutcome(outcome m.Outcome) error {
	t.wait()

	_, err := fmt.Fprint(t.output, renderOutcome(outcome))

	return err
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

func renderOutcome(outcome m.Outcome) string {
	var b strings.Builder

	b.WriteString(outcome.Listing)
	b.WriteString("\n")

	lines := []string{
		titleStyle.Render("Final stats"),
		fmt.Sprintf("%s sets of duplicate files found", accentStyle.Render(fmt.Sprintf("%d", outcome.SetCount()))),
		fmt.Sprintf("%s files scanned, %s skipped",
			accentStyle.Render(fmt.Sprintf("%d", outcome.Scanned)),
			accentStyle.Render(fmt.Sprintf("%d", outcome.Skipped))),
	}

	switch outcome.Mode {
	case m.ModeMove:
		lines = append(lines, fmt.Sprintf("%s files moved to %s",
			accentStyle.Render(fmt.Sprintf("%d", outcome.Moved)), outcome.Destination))
	case m.ModeDelete:
		lines = append(lines, fmt.Sprintf("%s files deleted", accentStyle.Render(fmt.Sprintf("%d", outcome.Deleted))))
	case m.ModeReport:
	}

	if n := len(outcome.Failures); n > 0 {
		lines = append(lines, errStyle.Render(fmt.Sprintf("%d files could not be processed", n)))
	}

	if outcome.Interrupted {
		lines = append(lines, errStyle.Render("Scan interrupted before completion"))
	}

	b.WriteString(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	b.WriteString("\n")

	switch {
	case outcome.Exported():
		b.WriteString(okStyle.Render(fmt.Sprintf("File saved to %s", outcome.ExportPath)))
		b.WriteString("\n")
	case outcome.ExportPath != "":
		b.WriteString(errStyle.Render(fmt.Sprintf("Unable to save to %s: %v", outcome.ExportPath, outcome.ExportErr)))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render("run " + outcome.RunID))
	b.WriteString("\n")

	return b.String()
}

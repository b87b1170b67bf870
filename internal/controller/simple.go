package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain lines written through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start announces the scan.
func (s *SimpleUI) Start(_ m.Config) error {
	s.printf("Beginning scan...\n")
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayFileHashed is silent in plain mode.
func (s *SimpleUI) DisplayFileHashed(_ m.FileRecord) {
}

// DisplayFileSkipped is silent in plain mode; skipped files are logged.
func (s *SimpleUI) DisplayFileSkipped(_ m.Path, _ error) {
}

// DisplayHeartbeat tells the user the scan is still alive.
func (s *SimpleUI) DisplayHeartbeat(_ m.ProgressSnapshot) {
	s.printf("Running, please be patient...\n")
}

// DisplayNoDuplicates reports an empty result.
func (s *SimpleUI) DisplayNoDuplicates() {
	s.printf("No duplicate files found!\n")
}

// DisplayOutcome prints the report, a statistics table on stderr and the
// export status.
func (s *SimpleUI) DisplayOutcome(outcome m.Outcome) error {
	s.printf("%s\n", outcome.Report)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Statistic", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, row := range statRows(outcome) {
		table.Append(row)
	}

	table.Render()
	s.eprintf("%s", tableBuffer.String())

	switch {
	case outcome.Exported():
		s.printf("File saved to %s\n", outcome.ExportPath)
	case outcome.ExportPath != "":
		s.printf("Unable to save to %s: %v\n", outcome.ExportPath, outcome.ExportErr)
	}

	return nil
}

func statRows(outcome m.Outcome) [][]string {
	rows := [][]string{
		{"Files scanned", strconv.Itoa(outcome.Scanned)},
		{"Files skipped", strconv.Itoa(outcome.Skipped)},
		{"Duplicate sets", strconv.Itoa(outcome.SetCount())},
	}

	switch outcome.Mode {
	case m.ModeMove:
		rows = append(rows, []string{"Files moved", strconv.Itoa(outcome.Moved)})
	case m.ModeDelete:
		rows = append(rows, []string{"Files deleted", strconv.Itoa(outcome.Deleted)})
	case m.ModeReport:
	}

	if len(outcome.Failures) > 0 {
		rows = append(rows, []string{"Failures", strconv.Itoa(len(outcome.Failures))})
	}

	if outcome.Interrupted {
		rows = append(rows, []string{"Interrupted", "yes"})
	}

	return rows
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) eprintf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/spf13/cobra"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return NewSimpleUI(cmd), &out, &errOut
}

func TestSimpleUI_Lifecycle(t *testing.T) {
	ui, out, _ := newTestSimpleUI()

	if err := ui.Start(m.Config{Source: "/src"}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayFileHashed(m.FileRecord{Path: "/src/a"})
	ui.DisplayFileSkipped("/src/b", errors.New("denied"))
	ui.DisplayHeartbeat(m.ProgressSnapshot{Scanned: 3})
	ui.DisplayNoDuplicates()
	ui.Close()

	want := "Beginning scan...\nRunning, please be patient...\nNo duplicate files found!\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestSimpleUI_DisplayOutcome(t *testing.T) {
	ui, out, errOut := newTestSimpleUI()

	outcome := m.Outcome{
		Mode:       m.ModeDelete,
		Scanned:    12,
		Skipped:    1,
		Sets:       []m.DuplicateSet{{Hash: "AA"}},
		Resolution: m.Resolution{Deleted: 4},
		Report:     "1.\t*/src/a\n2.\t/src/b\n===========\nFinal stats: 1 sets of duplicate files found.\n4 files deleted.\n",
		ExportPath: "/src/duplix.txt",
	}

	if err := ui.DisplayOutcome(outcome); err != nil {
		t.Fatalf("DisplayOutcome() error = %v", err)
	}

	if !strings.HasPrefix(out.String(), outcome.Report) {
		t.Fatalf("stdout does not start with the report\noutput:\n%s", out.String())
	}

	if !strings.Contains(out.String(), "File saved to /src/duplix.txt\n") {
		t.Fatalf("stdout missing export message\noutput:\n%s", out.String())
	}

	for _, want := range []string{"FILES SCANNED", "12", "FILES SKIPPED", "DUPLICATE SETS", "FILES DELETED", "4"} {
		if !strings.Contains(strings.ToUpper(errOut.String()), want) {
			t.Fatalf("stats table missing %q\noutput:\n%s", want, errOut.String())
		}
	}
}

func TestSimpleUI_DisplayOutcome_ExportFailure(t *testing.T) {
	ui, out, _ := newTestSimpleUI()

	outcome := m.Outcome{
		Sets:       []m.DuplicateSet{{Hash: "AA"}},
		Report:     "report\n",
		ExportPath: "/ro/duplix.txt",
		ExportErr:  errors.New("read-only file system"),
	}

	if err := ui.DisplayOutcome(outcome); err != nil {
		t.Fatalf("DisplayOutcome() error = %v", err)
	}

	if !strings.Contains(out.String(), "Unable to save to /ro/duplix.txt: read-only file system") {
		t.Fatalf("stdout missing export failure\noutput:\n%s", out.String())
	}

	if strings.Contains(out.String(), "File saved") {
		t.Fatalf("stdout reports a save that failed\noutput:\n%s", out.String())
	}
}

func TestStatRows(t *testing.T) {
	rows := statRows(m.Outcome{
		Mode:       m.ModeMove,
		Resolution: m.Resolution{Moved: 2, Failures: []m.FileFailure{{Path: "/src/a"}}},
	})

	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row[0])
	}

	want := "Files scanned,Files skipped,Duplicate sets,Files moved,Failures"
	if got := strings.Join(labels, ","); got != want {
		t.Fatalf("statRows() labels = %s, want %s", got, want)
	}
}

func TestStatRows_Interrupted(t *testing.T) {
	rows := statRows(m.Outcome{
		Mode:       m.ModeDelete,
		Resolution: m.Resolution{Deleted: 1, Interrupted: true},
	})

	last := rows[len(rows)-1]
	if last[0] != "Interrupted" || last[1] != "yes" {
		t.Fatalf("statRows() last row = %v, want [Interrupted yes]", last)
	}
}

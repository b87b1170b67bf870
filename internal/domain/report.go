package domain

import (
	"fmt"
	"strings"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
)

// SetSeparator terminates every duplicate set in a report.
const SetSeparator = "==========="

// FormatReport lists every member of every set, 1-indexed, one set per block.
func FormatReport(sets []m.DuplicateSet) string {
	return FormatMarkedReport(sets, nil)
}

// FormatMarkedReport is FormatReport with the paths present in deleted
// prefixed by "*".
func FormatMarkedReport(sets []m.DuplicateSet, deleted map[m.Path]struct{}) string {
	var b strings.Builder

	for _, set := range sets {
		for i, rec := range set.Files {
			marker := ""
			if _, ok := deleted[rec.Path]; ok {
				marker = "*"
			}

			fmt.Fprintf(&b, "%d.\t%s%s\n", i+1, marker, rec.Path)
		}

		b.WriteString(SetSeparator + "\n")
	}

	return b.String()
}

// FormatSummary renders the closing statistics of a scan.
func FormatSummary(outcome m.Outcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Final stats: %d sets of duplicate files found.\n", outcome.SetCount())

	switch outcome.Mode {
	case m.ModeMove:
		fmt.Fprintf(&b, "%d files moved to %s\n", outcome.Moved, outcome.Destination)
	case m.ModeDelete:
		fmt.Fprintf(&b, "%d files deleted.\n", outcome.Deleted)
	case m.ModeReport:
	}

	if outcome.Interrupted {
		b.WriteString("Scan interrupted before completion.\n")
	}

	return b.String()
}

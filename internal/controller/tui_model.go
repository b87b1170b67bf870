package controller

import (
	"fmt"
	"time"

	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxPathWidth = 60

// scanModel is the Bubble Tea model shown while a scan is running.
type scanModel struct {
	spinner spinner.Model
	source  string
	mode    string
	scanned int
	skipped int
	bytes   int64
	current string
	elapsed time.Duration
	done    bool
}

func newScanModel(cfg m.Config) scanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	return scanModel{
		spinner: s,
		source:  string(cfg.Source),
		mode:    cfg.Mode.String(),
	}
}

func (sm scanModel) Init() tea.Cmd {
	return sm.spinner.Tick
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileHashedMsg:
		sm.scanned++
		sm.bytes += msg.size
		sm.current = string(msg.path)

		return sm, nil

	case fileSkippedMsg:
		sm.skipped++

		return sm, nil

	case heartbeatMsg:
		sm.elapsed = msg.snapshot.Elapsed

		return sm, nil

	case scanDoneMsg:
		sm.done = true

		return sm, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return sm, tea.Quit
		}

		return sm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd
	}

	return sm, nil
}

func (sm scanModel) View() string {
	if sm.done {
		return ""
	}

	header := fmt.Sprintf("%s %s %s (%s)",
		sm.spinner.View(),
		titleStyle.Render("Scanning"),
		sm.source,
		sm.mode,
	)

	counts := fmt.Sprintf("  %s files hashed (%s), %s skipped",
		accentStyle.Render(fmt.Sprintf("%d", sm.scanned)),
		formatBytes(sm.bytes),
		accentStyle.Render(fmt.Sprintf("%d", sm.skipped)),
	)

	if sm.elapsed > 0 {
		counts += mutedStyle.Render(fmt.Sprintf("  %s", sm.elapsed.Truncate(time.Second)))
	}

	current := mutedStyle.Render("  " + truncateLeft(sm.current, maxPathWidth))

	return lipgloss.JoinVertical(lipgloss.Left, header, counts, current) + "\n"
}

// truncateLeft keeps the end of s, which is the informative part of a path.
func truncateLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	if width <= 3 {
		return string(runes[len(runes)-width:])
	}

	return "..." + string(runes[len(runes)-width+3:])
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

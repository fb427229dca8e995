package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/jpstrikesback/tabview/internal/ui/styles"
)

const maxLogLines = 500

// logsModel buffers lines arriving from the followed log file and renders
// the newest screenful.
type logsModel struct {
	lines []LogLineMsg
}

func newLogsModel() logsModel {
	return logsModel{}
}

func (m logsModel) Append(line LogLineMsg) logsModel {
	m.lines = append(m.lines, line)
	if len(m.lines) > maxLogLines {
		m.lines = m.lines[len(m.lines)-maxLogLines:]
	}

	return m
}

func (m logsModel) View(width, height int) string {
	if len(m.lines) == 0 {
		return styles.InfoMessage.Render("No log lines yet. Point follow_path at a file to watch it here.")
	}

	var rows []string
	for _, entry := range m.lines {
		rows = append(rows,
			styles.LogTime.Render(entry.When.Format("15:04:05"))+" "+styles.LogLine.Render(entry.Line))
	}

	wrapped := strings.Split(wordwrap.String(strings.Join(rows, "\n"), width), "\n")
	if len(wrapped) > height {
		wrapped = wrapped[len(wrapped)-height:]
	}

	return strings.Join(wrapped, "\n")
}

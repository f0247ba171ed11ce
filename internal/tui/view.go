package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/tally/internal/colorutil"
	"github.com/existflow/tally/internal/stats"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderList(),
	)

	switch m.mode {
	case ModeAdd, ModeEdit:
		content = m.overlay(m.renderFormModal())
	case ModeIncrement, ModeSetCount:
		content = m.overlay(m.renderAmountModal())
	case ModeConfirm:
		content = m.overlay(m.renderConfirmModal())
	case ModeStats:
		content = m.renderStats()
	case ModeHelp:
		content = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

func (m Model) overlay(modal string) string {
	return lipgloss.Place(
		m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("Tallies")

	right := ""
	if m.filterText != "" {
		right = m.styles.FilterPrompt.Render(fmt.Sprintf("filter: %s", m.filterText))
	}
	if m.sel.Active() {
		sel := m.styles.FilterPrompt.Render(fmt.Sprintf("%d selected", m.sel.Count()))
		if right != "" {
			right += "  "
		}
		right += sel
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m Model) renderList() string {
	if len(m.counters) == 0 {
		empty := "No counters yet. Press a to add one."
		if m.filterText != "" {
			empty = "No counters match the filter."
		}
		return m.styles.Help.Padding(1, 2).Render(empty)
	}

	var b strings.Builder
	for i, c := range m.counters {
		cursor := "  "
		if i == m.cursor {
			cursor = "❯ "
		}

		check := ""
		if m.sel.Active() {
			if m.sel.IsSelected(c.ID) {
				check = "[x] "
			} else {
				check = "[ ] "
			}
		}

		count := fmt.Sprintf("%d", c.Count)
		if c.HasTarget() {
			count = fmt.Sprintf("%d/%d %s", c.Count, c.Target, progressBar(c.Progress(), 10))
			if c.GoalReached() {
				count = m.styles.GoalReached.Render(count + " ✓")
			}
		}

		line := fmt.Sprintf("%s%s%s %-24s %s", cursor, check, swatch(c.Color), truncate(c.Name, 24), count)

		style := m.styles.Row
		if i == m.cursor {
			style = m.styles.RowSelected
		} else if m.sel.IsSelected(c.ID) {
			style = m.styles.RowChecked
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	if item, remaining, ok := m.undo.Pending(); ok {
		secs := int(remaining.Round(time.Second).Seconds())
		banner := fmt.Sprintf("Deleted %q — press u to undo (%ds)", item.Name, secs)
		return m.styles.UndoBanner.Width(m.width).Render(banner)
	}

	if m.message != "" {
		return m.styles.StatusBar.Width(m.width).Render(m.message)
	}

	hints := "+/- count • a add • e edit • d delete • v select • s stats • ? help • q quit"
	if m.sel.Active() {
		hints = "space toggle • A all • r reset selected • d delete selected • esc done"
	}
	return m.styles.StatusBar.Width(m.width).Render(hints)
}

func (m Model) renderFormModal() string {
	title := "Add counter"
	if m.mode == ModeEdit {
		title = "Edit counter"
	}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render(title) + "\n\n")
	labels := []string{"Name", "Target", "Color"}
	for i, input := range m.form {
		b.WriteString(m.styles.Help.Render(labels[i]) + "\n")
		b.WriteString(input.View() + "\n")
		if i == fieldColor {
			b.WriteString(m.colorPreview() + "\n")
		}
	}
	b.WriteString("\n" + m.styles.Help.Render("enter save • tab next field • ←/→ preset • ctrl+l/d shade • esc cancel"))
	return m.styles.Modal.Render(b.String())
}

// colorPreview renders the color field's current value as a swatch, with the
// hex readable on top of it.
func (m Model) colorPreview() string {
	hex, err := colorutil.Normalize(m.form[fieldColor].Value())
	if err != nil {
		hex = m.cfg.DefaultColor
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(colorutil.Contrast(hex))).
		Padding(0, 1).
		Render(hex)
}

func (m Model) renderAmountModal() string {
	title := "Add amount"
	if m.mode == ModeSetCount {
		title = "Set count"
	}
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render(title) + "\n\n")
	b.WriteString(m.amount.View() + "\n\n")
	b.WriteString(m.styles.Help.Render("enter apply • esc cancel"))
	return m.styles.Modal.Render(b.String())
}

func (m Model) renderConfirmModal() string {
	n := m.sel.Count()
	question := fmt.Sprintf("Delete %d counters?", n)
	if m.pending == confirmBulkReset {
		question = fmt.Sprintf("Reset %d counters to 0?", n)
	}
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render(question) + "\n\n")
	b.WriteString(m.styles.Help.Render("y confirm • n cancel"))
	return m.styles.Modal.Render(b.String())
}

func (m Model) renderStats() string {
	summary := stats.Summarize(m.repo.Counters(), time.Now())

	row := func(label, value string) string {
		return m.styles.StatLabel.Render(label) + m.styles.StatValue.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Statistics") + "\n\n")
	b.WriteString(row("Counters", fmt.Sprintf("%d", summary.TotalCounters)))
	b.WriteString(row("Total count", fmt.Sprintf("%d", summary.TotalCount)))
	b.WriteString(row("Total actions", fmt.Sprintf("%d", summary.TotalActions)))
	b.WriteString(row("Actions today", fmt.Sprintf("%d", summary.TodayActions)))
	b.WriteString(row("Goals completed", fmt.Sprintf("%d", summary.CompletedGoals)))
	if summary.MostActive != nil {
		b.WriteString(row("Most active", fmt.Sprintf("%s (%d actions)", summary.MostActive.Name, len(summary.MostActive.History))))
	}
	if summary.HighestCount != nil {
		b.WriteString(row("Highest count", fmt.Sprintf("%s (%d)", summary.HighestCount.Name, summary.HighestCount.Count)))
	}
	b.WriteString("\n" + m.styles.Help.Render("press any key to go back"))

	return m.overlay(m.styles.Modal.Render(b.String()))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Keys") + "\n\n")
	lines := []string{
		"↑/k ↓/j     move cursor",
		"K/J         reorder counter",
		"+/-         increment / decrement",
		"i           increment by amount",
		"c           set count directly",
		"a e         add / edit counter",
		"r           reset (selected counters in selection mode)",
		"d           delete (selected counters in selection mode)",
		"u           undo last delete",
		"v space A   selection mode / toggle / select all",
		"/           filter by name",
		"s           statistics",
		"t           toggle light/dark theme",
		"q           quit",
	}
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	b.WriteString("\n" + m.styles.Help.Render("press any key to go back"))
	return m.overlay(m.styles.Modal.Render(b.String()))
}

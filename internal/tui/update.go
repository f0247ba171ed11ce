package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tally/internal/colorutil"
	"github.com/existflow/tally/internal/counter"
	"github.com/existflow/tally/internal/validate"
)

// tickMsg drives the undo banner countdown
type tickMsg time.Time

// Init initializes the model with a tick command
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Re-render so the undo countdown stays current
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAdd, ModeEdit:
			return m.updateForm(msg)
		case ModeIncrement, ModeSetCount:
			return m.updateAmount(msg)
		case ModeFilter:
			return m.updateFilter(msg)
		case ModeConfirm:
			return m.handleConfirmKeys(msg)
		case ModeStats, ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	m.message = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Escape):
		if m.sel.Active() {
			m.sel.Clear()
		} else if m.filterText != "" {
			m.filterText = ""
			m.refresh()
		}

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.counters)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.MoveUp):
		m.moveCurrent(ctx, -1)

	case key.Matches(msg, keys.MoveDown):
		m.moveCurrent(ctx, 1)

	case key.Matches(msg, keys.Increment):
		if c, ok := m.current(); ok {
			m.repo.Increment(ctx, c.ID, 1)
			m.refresh()
			if cur, ok := m.current(); ok && cur.GoalReached() {
				m.message = fmt.Sprintf("🎯 %s goal reached!", cur.Name)
			}
		}

	case key.Matches(msg, keys.Decrement):
		if c, ok := m.current(); ok {
			m.repo.Decrement(ctx, c.ID, 1)
			m.refresh()
		}

	case key.Matches(msg, keys.Custom):
		if c, ok := m.current(); ok {
			m.editID = c.ID
			m.amount.SetValue("")
			m.amount.Placeholder = "Amount to add"
			m.amount.Focus()
			m.mode = ModeIncrement
		}

	case key.Matches(msg, keys.SetCount):
		if c, ok := m.current(); ok {
			m.editID = c.ID
			m.amount.SetValue(fmt.Sprintf("%d", c.Count))
			m.amount.Placeholder = "New count"
			m.amount.Focus()
			m.mode = ModeSetCount
		}

	case key.Matches(msg, keys.Add):
		m.resetForm()
		m.editID = ""
		m.mode = ModeAdd

	case key.Matches(msg, keys.Edit):
		if c, ok := m.current(); ok {
			m.resetForm()
			m.editID = c.ID
			m.form[fieldName].SetValue(c.Name)
			if c.Target > 0 {
				m.form[fieldTarget].SetValue(fmt.Sprintf("%d", c.Target))
			}
			m.form[fieldColor].SetValue(c.Color)
			m.mode = ModeEdit
		}

	case key.Matches(msg, keys.Reset):
		if m.sel.Active() && m.sel.Count() > 0 {
			m.pending = confirmBulkReset
			m.mode = ModeConfirm
		} else if c, ok := m.current(); ok {
			m.repo.ResetOne(ctx, c.ID)
			m.refresh()
			m.message = fmt.Sprintf("Reset %q", c.Name)
		}

	case key.Matches(msg, keys.Delete):
		if m.sel.Active() && m.sel.Count() > 0 {
			m.pending = confirmBulkDelete
			m.mode = ModeConfirm
		} else if c, ok := m.current(); ok {
			if removed, ok := m.repo.Delete(ctx, c.ID); ok {
				m.undo.MarkDeleted(removed)
				m.sel.Drop(removed.ID)
				m.refresh()
				m.message = fmt.Sprintf("Deleted %q — press u to undo", removed.Name)
			}
		}

	case key.Matches(msg, keys.Undo):
		if item, ok := m.undo.Undo(); ok {
			m.repo.AddRestored(ctx, item)
			m.refresh()
			m.message = fmt.Sprintf("Restored %q", item.Name)
		}

	case key.Matches(msg, keys.Select):
		if m.sel.Active() {
			m.sel.Exit()
		} else {
			m.sel.Enter()
		}

	case key.Matches(msg, keys.Toggle):
		if c, ok := m.current(); ok {
			if !m.sel.Active() {
				m.sel.Enter()
			}
			m.sel.Toggle(c.ID)
		}

	case key.Matches(msg, keys.SelectAll):
		if m.sel.Active() {
			m.sel.SelectAll(m.visibleIDs())
		}

	case key.Matches(msg, keys.Filter):
		m.filter.SetValue(m.filterText)
		m.filter.Focus()
		m.mode = ModeFilter

	case key.Matches(msg, keys.Stats):
		m.mode = ModeStats

	case key.Matches(msg, keys.Theme):
		if m.theme == "dark" {
			m.theme = "light"
		} else {
			m.theme = "dark"
		}
		m.styles = NewStyles(m.theme)
		m.saveTheme()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

// moveCurrent shifts the counter under the cursor by delta within the full
// collection order. Disabled while a filter hides part of the collection.
func (m *Model) moveCurrent(ctx context.Context, delta int) {
	if m.filterText != "" {
		m.message = "Clear the filter before reordering"
		return
	}
	i := m.cursor
	j := i + delta
	if i < 0 || i >= len(m.counters) || j < 0 || j >= len(m.counters) {
		return
	}

	order := m.visibleIDs()
	order[i], order[j] = order[j], order[i]
	if err := m.repo.Reorder(ctx, order); err != nil {
		m.message = err.Error()
		return
	}
	m.cursor = j
	m.refresh()
}

// updateForm handles the add/edit form
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.form[m.focusIdx].Blur()
		m.focusIdx = (m.focusIdx + 1) % len(m.form)
		m.form[m.focusIdx].Focus()
		return m, nil

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.form[m.focusIdx].Blur()
		m.focusIdx = (m.focusIdx + len(m.form) - 1) % len(m.form)
		m.form[m.focusIdx].Focus()
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m.submitForm()

	case msg.Type == tea.KeyLeft, msg.Type == tea.KeyRight:
		if m.focusIdx == fieldColor {
			m.cycleColorPreset(msg.Type == tea.KeyRight)
			return m, nil
		}

	case msg.Type == tea.KeyCtrlL, msg.Type == tea.KeyCtrlD:
		if m.focusIdx == fieldColor {
			m.adjustColorShade(msg.Type == tea.KeyCtrlL)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form[m.focusIdx], cmd = m.form[m.focusIdx].Update(msg)
	return m, cmd
}

// cycleColorPreset steps the color field through the preset palette. An
// unrecognized value starts the cycle from the nearest end.
func (m *Model) cycleColorPreset(forward bool) {
	idx := -1
	if cur, err := colorutil.Normalize(m.form[fieldColor].Value()); err == nil {
		for i, p := range colorutil.Presets {
			if p == cur {
				idx = i
				break
			}
		}
	}

	n := len(colorutil.Presets)
	switch {
	case idx < 0 && forward:
		idx = 0
	case idx < 0:
		idx = n - 1
	case forward:
		idx = (idx + 1) % n
	default:
		idx = (idx + n - 1) % n
	}
	m.form[fieldColor].SetValue(colorutil.Presets[idx])
}

// adjustColorShade nudges the color field's HSL lightness up or down.
func (m *Model) adjustColorShade(lighter bool) {
	cur, err := colorutil.Normalize(m.form[fieldColor].Value())
	if err != nil {
		cur = m.cfg.DefaultColor
	}

	var next string
	if lighter {
		next, err = colorutil.Lighten(cur, 0.1)
	} else {
		next, err = colorutil.Darken(cur, 0.1)
	}
	if err != nil {
		return
	}
	m.form[fieldColor].SetValue(next)
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	ctx := context.Background()

	name := validate.SanitizeName(m.form[fieldName].Value())
	if err := validate.Name(name); err != nil {
		m.message = err.Error()
		return m, nil
	}

	target := 0
	if v := m.form[fieldTarget].Value(); v != "" {
		n, err := validate.Target(v)
		if err != nil {
			m.message = "Target " + err.Error()
			return m, nil
		}
		target = n
	}

	color := m.cfg.DefaultColor
	if v := m.form[fieldColor].Value(); v != "" {
		c, err := colorutil.Normalize(v)
		if err != nil {
			m.message = "Color must look like #5AC8FA"
			return m, nil
		}
		color = c
	}

	if m.mode == ModeAdd {
		c := m.repo.Add(ctx, counter.AddInput{Name: name, Target: target, Color: color})
		m.message = fmt.Sprintf("Added %q", c.Name)
	} else {
		m.repo.Update(ctx, m.editID, counter.Update{Name: &name, Target: &target, Color: &color})
		m.message = fmt.Sprintf("Updated %q", name)
	}

	m.mode = ModeNormal
	m.refresh()
	return m, nil
}

// updateAmount handles the custom increment and set-count prompts
func (m Model) updateAmount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case msg.Type == tea.KeyEnter:
		ctx := context.Background()
		value := m.amount.Value()

		if m.mode == ModeIncrement {
			n, err := validate.IncrementAmount(value)
			if err != nil {
				m.message = "Amount " + err.Error()
				return m, nil
			}
			m.repo.Increment(ctx, m.editID, n)
		} else {
			n, err := validate.Count(value)
			if err != nil {
				m.message = "Count " + err.Error()
				return m, nil
			}
			m.repo.Update(ctx, m.editID, counter.Update{Count: &n})
		}

		m.mode = ModeNormal
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	return m, cmd
}

// updateFilter handles the live name filter
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.filterText = ""
		m.mode = ModeNormal
		m.refresh()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.filterText = m.filter.Value()
	m.refresh()
	return m, cmd
}

// handleConfirmKeys resolves a pending bulk operation
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "y", "Y", "enter":
		ids := m.sel.IDs(m.visibleIDs())
		switch m.pending {
		case confirmBulkDelete:
			m.repo.DeleteMany(ctx, ids)
			// A bulk delete supersedes any single pending undo
			m.undo.Clear()
			m.sel.Clear()
			m.message = fmt.Sprintf("Deleted %d counters", len(ids))
		case confirmBulkReset:
			m.repo.ResetMany(ctx, ids)
			m.sel.Clear()
			m.message = fmt.Sprintf("Reset %d counters", len(ids))
		}
		m.pending = confirmNone
		m.mode = ModeNormal
		m.refresh()
		return m, nil

	case "n", "N", "esc":
		m.pending = confirmNone
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/tally/internal/config"
	"github.com/existflow/tally/internal/counter"
	"github.com/existflow/tally/internal/logger"
	"github.com/existflow/tally/internal/model"
	"github.com/existflow/tally/internal/selection"
	"github.com/existflow/tally/internal/store"
	"github.com/existflow/tally/internal/undo"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeEdit
	ModeIncrement
	ModeSetCount
	ModeFilter
	ModeStats
	ModeConfirm
	ModeHelp
)

// Form field positions for add/edit
const (
	fieldName = iota
	fieldTarget
	fieldColor
)

// confirmAction is a pending bulk operation awaiting confirmation
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmBulkDelete
	confirmBulkReset
)

// Model is the main TUI model
type Model struct {
	repo  *counter.Repository
	store store.Store
	cfg   *config.Config

	counters []model.Counter // current snapshot in display order
	sel      *selection.Manager
	undo     *undo.Manager

	// UI state
	width   int
	height  int
	mode    Mode
	cursor  int
	theme   string // "light" or "dark"
	styles  Styles
	message string

	// Filter (applies to the list view)
	filterText string

	// Inputs
	form     []textinput.Model // name, target, color for add/edit
	focusIdx int
	amount   textinput.Model // increment amount / direct count
	filter   textinput.Model
	editID   string // counter being edited / incremented

	pending confirmAction
}

// NewModel creates a new TUI model
func NewModel(repo *counter.Repository, st store.Store, cfg *config.Config, theme string) Model {
	logger.Info("Initializing TUI model")

	form := make([]textinput.Model, 3)
	for i := range form {
		form[i] = textinput.New()
		form[i].CharLimit = 64
		form[i].Width = 36
	}
	form[fieldName].Placeholder = "Name"
	form[fieldTarget].Placeholder = "Target (optional)"
	form[fieldColor].Placeholder = "Color #RRGGBB (optional)"

	amount := textinput.New()
	amount.Placeholder = "Amount"
	amount.CharLimit = 9
	amount.Width = 12

	filter := textinput.New()
	filter.Placeholder = "Filter by name..."
	filter.CharLimit = 64
	filter.Width = 30

	m := Model{
		repo:   repo,
		store:  st,
		cfg:    cfg,
		sel:    selection.New(),
		undo:   undo.New(time.Duration(cfg.UndoWindowMS) * time.Millisecond),
		mode:   ModeNormal,
		theme:  theme,
		styles: NewStyles(theme),
		form:   form,
		amount: amount,
		filter: filter,
	}
	m.refresh()

	logger.Debug("TUI model initialized", logger.F("counters", len(m.counters)))
	return m
}

// refresh re-reads the repository snapshot, applies the filter and keeps the
// cursor and selection consistent with what still exists.
func (m *Model) refresh() {
	all := m.repo.Counters()

	if m.filterText != "" {
		needle := strings.ToLower(m.filterText)
		filtered := make([]model.Counter, 0, len(all))
		for _, c := range all {
			if strings.Contains(strings.ToLower(c.Name), needle) {
				filtered = append(filtered, c)
			}
		}
		m.counters = filtered
	} else {
		m.counters = all
	}

	ids := make([]string, len(all))
	for i, c := range all {
		ids[i] = c.ID
	}
	m.sel.Reconcile(ids)

	if m.cursor >= len(m.counters) {
		m.cursor = len(m.counters) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// current returns the counter under the cursor.
func (m *Model) current() (model.Counter, bool) {
	if len(m.counters) == 0 || m.cursor >= len(m.counters) {
		return model.Counter{}, false
	}
	return m.counters[m.cursor], true
}

// visibleIDs returns the ids of the currently listed counters in order.
func (m *Model) visibleIDs() []string {
	ids := make([]string, len(m.counters))
	for i, c := range m.counters {
		ids[i] = c.ID
	}
	return ids
}

func (m *Model) saveTheme() {
	if err := m.store.Set(context.Background(), store.KeyTheme, m.theme); err != nil {
		logger.Warn("Failed to save theme", logger.F("error", err))
	}
}

func (m *Model) resetForm() {
	for i := range m.form {
		m.form[i].SetValue("")
		m.form[i].Blur()
	}
	m.focusIdx = 0
	m.form[fieldName].Focus()
}

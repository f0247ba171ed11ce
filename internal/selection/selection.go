// Package selection tracks which counter ids are chosen for bulk operations
// while selection mode is active. It holds ids only; the repository remains
// the source of truth for the counters themselves.
package selection

// Manager tracks selection mode and the selected id set. It is used from a
// single goroutine (the TUI event loop) and needs no locking.
type Manager struct {
	active   bool
	selected map[string]bool
}

// New returns a Manager with selection mode off.
func New() *Manager {
	return &Manager{selected: make(map[string]bool)}
}

// Active reports whether selection mode is on.
func (m *Manager) Active() bool {
	return m.active
}

// Enter turns selection mode on.
func (m *Manager) Enter() {
	m.active = true
}

// Exit turns selection mode off and clears the selected set.
func (m *Manager) Exit() {
	m.active = false
	m.selected = make(map[string]bool)
}

// Toggle flips whether id is selected.
func (m *Manager) Toggle(id string) {
	if m.selected[id] {
		delete(m.selected, id)
	} else {
		m.selected[id] = true
	}
}

// SelectAll selects every id in allIDs, unless they are all already selected,
// in which case it clears the set (toggle-all).
func (m *Manager) SelectAll(allIDs []string) {
	if len(allIDs) > 0 && m.Count() == len(allIDs) {
		allSelected := true
		for _, id := range allIDs {
			if !m.selected[id] {
				allSelected = false
				break
			}
		}
		if allSelected {
			m.selected = make(map[string]bool)
			return
		}
	}
	m.selected = make(map[string]bool, len(allIDs))
	for _, id := range allIDs {
		m.selected[id] = true
	}
}

// Clear empties the set and exits selection mode.
func (m *Manager) Clear() {
	m.Exit()
}

// IsSelected reports whether id is selected.
func (m *Manager) IsSelected(id string) bool {
	return m.selected[id]
}

// Count returns the number of selected ids.
func (m *Manager) Count() int {
	return len(m.selected)
}

// IDs returns the selected ids in the order they appear in reference, so bulk
// operations follow display order.
func (m *Manager) IDs(reference []string) []string {
	out := make([]string, 0, len(m.selected))
	for _, id := range reference {
		if m.selected[id] {
			out = append(out, id)
		}
	}
	return out
}

// Drop removes the given ids from the set. Called when counters are deleted
// through any path so stale ids cannot accumulate.
func (m *Manager) Drop(ids ...string) {
	for _, id := range ids {
		delete(m.selected, id)
	}
}

// Reconcile intersects the set with the ids that still exist.
func (m *Manager) Reconcile(existingIDs []string) {
	exists := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		exists[id] = true
	}
	for id := range m.selected {
		if !exists[id] {
			delete(m.selected, id)
		}
	}
}

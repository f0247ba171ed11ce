// Package backup validates externally supplied counter data and reconciles
// it with the existing collection. It also produces the export blob and the
// plain-text share summary. File choosing and sharing stay with the caller;
// this package only reads and writes explicit paths.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/existflow/tally/internal/model"
)

// ErrInvalidFormat rejects a payload whose top-level shape is wrong or that
// contains any element missing a required field. Imports are all-or-nothing.
var ErrInvalidFormat = errors.New("not a valid tallies backup")

// rawCounter tolerates the loose shapes found in backups from older app
// versions: count may be absent or non-numeric, history may be absent.
type rawCounter struct {
	ID        string               `json:"id"`
	Name      *string              `json:"name"`
	Count     json.RawMessage      `json:"count"`
	Target    int                  `json:"target"`
	Color     string               `json:"color"`
	History   []model.HistoryEntry `json:"history"`
	CreatedAt int64                `json:"createdAt"`
}

// Validate parses data as a counter array. Every element must carry a
// non-empty id and a string name; count defaults to 0 when missing or
// invalid, color and history default when absent. Any violation fails the
// whole batch.
func Validate(data []byte) ([]model.Counter, error) {
	var raw []rawCounter
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	counters := make([]model.Counter, 0, len(raw))
	for i, item := range raw {
		if item.ID == "" || item.Name == nil {
			return nil, fmt.Errorf("%w: element %d is missing id or name", ErrInvalidFormat, i)
		}

		count := 0
		if len(item.Count) > 0 {
			var f float64
			if err := json.Unmarshal(item.Count, &f); err == nil {
				count = int(f)
			}
		}
		if count < 0 {
			count = 0
		}

		color := item.Color
		if color == "" {
			color = model.DefaultColor
		}
		history := item.History
		if history == nil {
			history = []model.HistoryEntry{}
		}

		counters = append(counters, model.Counter{
			ID:        item.ID,
			Name:      *item.Name,
			Count:     count,
			Target:    item.Target,
			Color:     color,
			History:   history,
			CreatedAt: item.CreatedAt,
		})
	}

	return counters, nil
}

// Merge combines incoming with existing, deduplicating by id with
// imported-wins semantics: an incoming counter with a known id replaces that
// entry in place, the rest are appended in incoming order.
func Merge(existing, incoming []model.Counter) []model.Counter {
	out := make([]model.Counter, len(existing))
	index := make(map[string]int, len(existing))
	for i, c := range existing {
		out[i] = c
		index[c.ID] = i
	}

	for _, in := range incoming {
		if i, ok := index[in.ID]; ok {
			out[i] = in
		} else {
			index[in.ID] = len(out)
			out = append(out, in)
		}
	}
	return out
}

// Replace discards existing entirely.
func Replace(existing, incoming []model.Counter) []model.Counter {
	out := make([]model.Counter, len(incoming))
	copy(out, incoming)
	return out
}

// ExportJSON serializes the collection as pretty-printed JSON, the format
// written to backup files.
func ExportJSON(counters []model.Counter) ([]byte, error) {
	if counters == nil {
		counters = []model.Counter{}
	}
	data, err := json.MarshalIndent(counters, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode counters: %w", err)
	}
	return data, nil
}

// FileName returns the backup filename for the given day,
// e.g. tallies_backup_2026-09-01.json.
func FileName(now time.Time) string {
	return fmt.Sprintf("tallies_backup_%s.json", now.Format("2006-01-02"))
}

// WriteFile exports the collection to path. An empty path writes the default
// filename in the current directory. Returns the path written.
func WriteFile(path string, counters []model.Counter, now time.Time) (string, error) {
	if path == "" {
		path = FileName(now)
	}
	data, err := ExportJSON(counters)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return path, nil
}

// ReadFile loads and validates a backup file.
func ReadFile(path string) ([]model.Counter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	return Validate(data)
}

// ShareText renders the collection as a shareable plain-text summary, one
// counter per line in collection order.
func ShareText(counters []model.Counter) string {
	var b strings.Builder
	b.WriteString("My Tallies:\n\n")
	for _, c := range counters {
		if c.HasTarget() {
			fmt.Fprintf(&b, "%s (%d/%d)\n", c.Name, c.Count, c.Target)
		} else {
			fmt.Fprintf(&b, "%s: %d\n", c.Name, c.Count)
		}
	}
	b.WriteString("\nTracked with Tallies app")
	return b.String()
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/existflow/tally/internal/config"
	"github.com/existflow/tally/internal/counter"
	"github.com/existflow/tally/internal/logger"
	"github.com/existflow/tally/internal/model"
	"github.com/existflow/tally/internal/store"
)

// session bundles what every command needs: config, the open store and a
// loaded repository.
type session struct {
	cfg  *config.Config
	st   *store.SQLite
	repo *counter.Repository
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("Failed to load config, using defaults", logger.F("error", err))
		cfg = config.DefaultConfig()
	}

	st, err := store.OpenDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	repo := counter.New(st)
	if err := repo.Load(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}

	return &session{cfg: cfg, st: st, repo: repo}, nil
}

func (s *session) Close() {
	_ = s.st.Close()
}

// resolveCounter matches ref against the collection: exact id first, then a
// unique id prefix, then an exact name (case-insensitive).
func resolveCounter(counters []model.Counter, ref string) (model.Counter, error) {
	for _, c := range counters {
		if c.ID == ref {
			return c, nil
		}
	}

	var prefixMatches []model.Counter
	for _, c := range counters {
		if strings.HasPrefix(c.ID, ref) {
			prefixMatches = append(prefixMatches, c)
		}
	}
	if len(prefixMatches) == 1 {
		return prefixMatches[0], nil
	}
	if len(prefixMatches) > 1 {
		return model.Counter{}, fmt.Errorf("id %q is ambiguous (%d matches)", ref, len(prefixMatches))
	}

	var nameMatches []model.Counter
	for _, c := range counters {
		if strings.EqualFold(c.Name, ref) {
			nameMatches = append(nameMatches, c)
		}
	}
	if len(nameMatches) == 1 {
		return nameMatches[0], nil
	}
	if len(nameMatches) > 1 {
		return model.Counter{}, fmt.Errorf("name %q is ambiguous (%d matches)", ref, len(nameMatches))
	}

	return model.Counter{}, fmt.Errorf("counter not found: %s", ref)
}

// loadTheme reads the persisted theme preference, defaulting to light.
func loadTheme(ctx context.Context, st store.Store) string {
	theme, ok, err := st.Get(ctx, store.KeyTheme)
	if err != nil || !ok || (theme != "light" && theme != "dark") {
		return "light"
	}
	return theme
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var response string
	_, _ = fmt.Scanln(&response)
	return strings.ToLower(response) == "y"
}

package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/existflow/tally/internal/backup"
	"github.com/existflow/tally/internal/counter"
	"github.com/existflow/tally/internal/server"
	"github.com/existflow/tally/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*server.Server, *counter.Repository) {
	t.Helper()
	repo := counter.New(store.NewMemory())
	require.NoError(t, repo.Load(context.Background()))
	return server.New(repo), repo
}

func get(t *testing.T, s *server.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
}

func TestCountersEndpoint(t *testing.T) {
	s, repo := newTestServer(t)
	ctx := context.Background()
	c := repo.Add(ctx, counter.AddInput{Name: "Water", Target: 8})
	repo.Increment(ctx, c.ID, 3)

	rec := get(t, s, "/api/v1/counters")
	require.Equal(t, http.StatusOK, rec.Code)

	// The payload is the backup format
	counters, err := backup.Validate(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, counters, 1)
	require.Equal(t, "Water", counters[0].Name)
	require.Equal(t, 3, counters[0].Count)
}

func TestCountersEndpointEmpty(t *testing.T) {
	s, _ := newTestServer(t)

	rec := get(t, s, "/api/v1/counters")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestStatsEndpoint(t *testing.T) {
	s, repo := newTestServer(t)
	ctx := context.Background()
	a := repo.Add(ctx, counter.AddInput{Name: "Water", Target: 2})
	repo.Increment(ctx, a.ID, 2)
	b := repo.Add(ctx, counter.AddInput{Name: "Pages"})
	repo.Increment(ctx, b.ID, 5)

	rec := get(t, s, "/api/v1/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.EqualValues(t, 2, body["totalCounters"])
	require.EqualValues(t, 7, body["totalCount"])
	require.EqualValues(t, 1, body["completedGoals"])
	require.Equal(t, "Pages", body["highestCount"])
}

func TestShareEndpoint(t *testing.T) {
	s, repo := newTestServer(t)
	repo.Add(context.Background(), counter.AddInput{Name: "Water"})

	rec := get(t, s, "/api/v1/share")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "My Tallies:")
	require.Contains(t, rec.Body.String(), "Water: 0")
}

// Package server exposes a read-only local HTTP API over the counter
// collection so other tools on the machine can pull backups and stats.
package server

import (
	"net/http"
	"time"

	"github.com/existflow/tally/internal/backup"
	"github.com/existflow/tally/internal/counter"
	"github.com/existflow/tally/internal/logger"
	"github.com/existflow/tally/internal/stats"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server serves the local API.
type Server struct {
	repo *counter.Repository
	echo *echo.Echo
}

// New creates a server over the given repository.
func New(repo *counter.Repository) *Server {
	s := &Server{repo: repo}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Request/response logging through the app logger
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("duration", time.Since(start).String()))
			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.GET("/health", s.handleHealth)

	api := e.Group("/api/v1")
	api.GET("/counters", s.handleCounters)
	api.GET("/stats", s.handleStats)
	api.GET("/share", s.handleShare)

	s.echo = e
}

// Start listens on addr until the process exits.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Handler returns the underlying handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleCounters returns the full collection in backup format.
func (s *Server) handleCounters(c echo.Context) error {
	data, err := backup.ExportJSON(s.repo.Counters())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to encode counters")
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

func (s *Server) handleStats(c echo.Context) error {
	summary := stats.Summarize(s.repo.Counters(), time.Now())

	resp := map[string]interface{}{
		"totalCounters":  summary.TotalCounters,
		"totalCount":     summary.TotalCount,
		"totalActions":   summary.TotalActions,
		"completedGoals": summary.CompletedGoals,
		"todayActions":   summary.TodayActions,
	}
	if summary.MostActive != nil {
		resp["mostActive"] = summary.MostActive.Name
	}
	if summary.HighestCount != nil {
		resp["highestCount"] = summary.HighestCount.Name
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleShare(c echo.Context) error {
	return c.String(http.StatusOK, backup.ShareText(s.repo.Counters()))
}

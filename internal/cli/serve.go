package cli

import (
	"fmt"

	"github.com/existflow/tally/internal/logger"
	"github.com/existflow/tally/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a read-only local HTTP API",
	Long: `Serve the counter collection over a local HTTP API.

Endpoints:
  GET /health
  GET /api/v1/counters   backup-format JSON
  GET /api/v1/stats      summary statistics
  GET /api/v1/share      plain-text summary`,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	addr := sess.cfg.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(sess.repo)
	fmt.Printf("Serving tally API on %s\n", addr)
	logger.Info("API server starting", logger.F("addr", addr))
	return srv.Start(addr)
}

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tally/internal/config"
	"github.com/existflow/tally/internal/logger"
	"github.com/existflow/tally/internal/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Tally - terminal tally counter tracker",
	Long: `Tally tracks named counters with optional targets and colors.

Run 'tally' without arguments to launch the interactive TUI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		logConfig := logger.DefaultConfig()
		logConfig.Level = logger.ParseLevel(cfg.LogLevel)
		logConfig.FilePath = cfg.LogFile
		logConfig.Console = cfg.LogConsole

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("Tally started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer sess.Close()

		theme := loadTheme(cmd.Context(), sess.st)

		logger.Info("Launching TUI")
		m := tui.NewModel(sess.repo, sess.st, sess.cfg, theme)
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		logger.Info("TUI exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("Tally exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(incCmd)
	rootCmd.AddCommand(decCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(clearCmd)
}

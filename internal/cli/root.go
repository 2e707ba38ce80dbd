// Package cli builds the rollbook command tree.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/halmaawali/rollbook/internal/config"
	"github.com/halmaawali/rollbook/internal/service"
	"github.com/halmaawali/rollbook/internal/storage"
	"github.com/halmaawali/rollbook/internal/storage/sqlite"
	"github.com/halmaawali/rollbook/pkg/logging"
)

// timeNow is swapped out by tests that need a fixed clock.
var timeNow = time.Now

// app wires the store and services for the lifetime of one command run.
type app struct {
	store    storage.Store
	roster   *service.RosterService
	sessions *service.SessionService
	settings *service.SettingsService
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// NewRootCmd assembles the root command and all subcommands.
func NewRootCmd() *cobra.Command {
	cfg := config.New()
	a := &app{}
	var dbPath string

	root := &cobra.Command{
		Use:           "rollbook",
		Short:         "Attendance tracking for a small troop",
		Long:          "Rollbook maintains a member roster, records per-session attendance and produces printable attendance reports. All data is stored on-device.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logging.Setup(cfg.LogLevel)
			store, err := sqlite.New(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			a.store = store
			a.roster = service.NewRosterService(store)
			a.sessions = service.NewSessionService(store)
			a.settings = service.NewSettingsService(store)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.store != nil {
				_ = a.store.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "Path to the rollbook database file")

	root.AddCommand(
		newMemberCmd(a),
		newGroupCmd(a),
		newSessionCmd(a),
		newReportCmd(a),
		newBackupCmd(a),
		newSettingsCmd(a),
		newWipeCmd(a),
	)
	return root
}

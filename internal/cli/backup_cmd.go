package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halmaawali/rollbook/internal/backup"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore a full data snapshot",
	}
	cmd.AddCommand(newBackupExportCmd(a), newBackupImportCmd(a))
	return cmd
}

func newBackupExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write a snapshot of all data to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := backup.Filename(timeNow())
			if len(args) == 1 {
				path = args[0]
			}

			snapshot := backup.Export(cmd.Context(), a.store)
			data, err := snapshot.Encode()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", path)
			return nil
		},
	}
}

func newBackupImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Restore data from a snapshot file",
		Long: "Replaces each collection present in the snapshot with the snapshot's " +
			"version. Collections missing from the file, such as groups in a 1.0 " +
			"snapshot, are left untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if !backup.Import(cmd.Context(), a.store, data) {
				return fmt.Errorf("restore failed: %s is not a valid backup file", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Backup restored")
			return nil
		},
	}
}

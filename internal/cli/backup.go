package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsdesk/internal/export"
)

var (
	backupOutput    string
	restoreStrategy string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up items and preferences",
	Long: `Write every stored item and preference to a JSON backup.

The backup can be loaded with 'newsdesk restore'.

Examples:
  newsdesk backup --output backup.json
  newsdesk backup > backup_$(date +%Y%m%d).json`,
	Args: cobra.NoArgs,
	RunE: runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore [file]",
	Short: "Restore a backup",
	Long: `Load items and preferences from a backup written by 'newsdesk backup'.

Conflict strategies for items that already exist:
  skip       keep the stored item (default)
  overwrite  replace it with the backed up one

Examples:
  newsdesk restore backup.json
  newsdesk restore backup.json --strategy overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(backupCmd, restoreCmd)

	backupCmd.Flags().StringVarP(&backupOutput, "output", "o", "", "Output file (default: stdout)")
	restoreCmd.Flags().StringVar(&restoreStrategy, "strategy", string(export.ConflictStrategySkip), "Conflict strategy (skip, overwrite)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	a, err := openApp("backup")
	if err != nil {
		return err
	}
	defer a.Close()

	exporter := export.NewBackupExporter(a.items, a.prefRepo)

	if backupOutput == "" {
		return exporter.BackupToWriter(cmd.Context(), cmd.OutOrStdout())
	}

	f, err := os.Create(backupOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := exporter.BackupToWriter(cmd.Context(), f); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(fmt.Sprintf("✓ Backup written to %s", backupOutput)))
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	strategy := export.ConflictStrategy(restoreStrategy)
	if strategy != export.ConflictStrategySkip && strategy != export.ConflictStrategyOverwrite {
		return fmt.Errorf("unknown strategy %q (use skip or overwrite)", restoreStrategy)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer f.Close()

	a, err := openApp("restore")
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := export.NewImporter(a.items, a.prefRepo).RestoreBackup(cmd.Context(), f, strategy)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Error.Render(fmt.Sprintf("✗ Restore failed: %v", err)))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.styles.Success.Render("✓ Backup restored"))
	fmt.Fprintf(out, "  Items:       %d\n", result.Items)
	fmt.Fprintf(out, "  Skipped:     %d\n", result.Skipped)
	fmt.Fprintf(out, "  Preferences: %d\n", result.Preferences)
	return nil
}

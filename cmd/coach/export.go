// ABOUTME: Export and import commands for a user's full record set.
// ABOUTME: JSON files, usable as backups or to move data between backends.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/coach/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export your records as JSON",
	Long: `Export every persisted record for the logged-in user to a JSON file
(default coach-export.json). The file can be imported on another machine
or after switching storage backends.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireLogin()
		if err != nil {
			return err
		}

		path := "coach-export.json"
		if len(args) == 1 {
			path = args[0]
		}

		data := kvStore.Export(user)
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, encoded, 0o600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}

		color.Green("✓ Exported %d sessions and %d cardio entries to %s",
			len(data.WorkoutHistory), len(data.CardioLogs), path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON export",
	Long: `Import a previously exported record set. Records are written under
the username stored in the file, replacing that user's existing
collections wholesale.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(encoded, &data); err != nil {
			return fmt.Errorf("invalid export file: %w", err)
		}
		if data.User == "" {
			return fmt.Errorf("export file has no user")
		}

		kvStore.Import(&data)
		color.Green("✓ Imported records for %s", data.User)
		fmt.Println("  Run 'coach login " + data.User + "' to use them.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

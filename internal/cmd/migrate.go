package cmd

import (
	"context"
	"fmt"

	"focusflow/internal/config"
)

// ImportCmd seeds the database from the JSON snapshot documents in
// $FOCUSFLOW_HOME/snapshots
type ImportCmd struct {
	Home string `help:"FOCUSFLOW_HOME directory to import into (defaults to the active one)" default:""`
}

// Run executes the import command
func (i *ImportCmd) Run(cli *CLI) error {
	home := i.Home
	if home == "" {
		home = config.GetFocusFlowHome()
	}

	result, err := cli.Container.MigrationService.Import(context.Background(), home)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d task(s) and %d day(s) of stats\n", result.TaskCount, result.DailyStatDays)
	if result.ConfigImported {
		fmt.Println("Timer configuration imported")
	} else {
		fmt.Println("No timer configuration document; stored configuration left untouched")
	}
	return nil
}

// ExportCmd writes the database contents out as JSON snapshot documents
// under $FOCUSFLOW_HOME/snapshots
type ExportCmd struct {
	Home string `help:"FOCUSFLOW_HOME directory to export from (defaults to the active one)" default:""`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	home := e.Home
	if home == "" {
		home = config.GetFocusFlowHome()
	}

	if err := cli.Container.MigrationService.Export(context.Background(), home); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("Documents written to %s\n", config.GetSnapshotDir())
	return nil
}

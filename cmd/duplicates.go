package cmd

import (
	"context"
	"fmt"

	"staff-admin/core/config"
	"staff-admin/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// duplicatesCmd prints the duplicate report for the stored roster.
var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Report likely duplicate roster records",
	Long: `Scan the stored roster and report records sharing an email, last name,
or full name. Records are grouped; a record matching on several key types
is reported once per type.`,
	RunE: runDuplicates,
}

func init() {
	RootCmd.AddCommand(duplicatesCmd)
}

func runDuplicates(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc, err := buildRosterService(ctx, cfg, l)
	if err != nil {
		return err
	}

	duplicates := svc.Duplicates()
	if len(duplicates) == 0 {
		l.Info("No duplicate records found.")
		return nil
	}

	l.Info("Duplicate report", zap.Int("sightings", len(duplicates)))
	for _, d := range duplicates {
		l.Info("Duplicate",
			zap.Int("group", d.Group),
			zap.String("matchType", d.MatchType),
			zap.String("employeeId", d.Employee.EmployeeID),
			zap.String("firstName", d.Employee.FirstName),
			zap.String("lastName", d.Employee.LastName),
			zap.String("email", d.Employee.Email),
		)
	}
	return nil
}

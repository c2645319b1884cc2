package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"staff-admin/core/config"
	"staff-admin/core/database"
	"staff-admin/core/logger"
	"staff-admin/core/storage"
	"staff-admin/feature/employee"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	dryRunImport bool
	yesConfirm   bool
	fromSheet    bool
)

// importCmd runs a smart roster import from the command line.
var importCmd = &cobra.Command{
	Use:   "import [file.csv]",
	Short: "Smart-import a roster CSV against the stored roster",
	Long: `Reconcile a roster CSV against the stored roster: people in the CSV but
not the roster are added, active people missing from the CSV are terminated,
everyone else is left untouched.

The plan is always reported first. Terminations are destructive, so applying
requires confirmation unless --yes is given.

Examples:
  # Report only
  staff-admin import roster.csv --dry-run

  # Apply with interactive confirmation
  staff-admin import roster.csv

  # Apply non-interactively
  staff-admin import roster.csv --yes

  # Import from the configured sheet export instead of a file
  staff-admin import --sheet --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Plan and report without applying")
	importCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm terminations (non-interactive)")
	importCmd.Flags().BoolVar(&fromSheet, "sheet", false, "Import from the configured sheet URL instead of a file")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if !fromSheet && len(args) == 0 {
		return fmt.Errorf("either a CSV file argument or --sheet is required")
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc, err := buildRosterService(ctx, cfg, l)
	if err != nil {
		return err
	}

	filename := ""
	var data []byte
	if !fromSheet {
		filename = args[0]
		data, err = os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filename, err)
		}
	}

	// Step 1: Plan (always runs, never mutates)
	plan, err := runRosterImport(ctx, svc, filename, data, true)
	if err != nil {
		return err
	}

	l.Info("Import plan",
		zap.Int("added", plan.Summary.Added),
		zap.Int("terminated", plan.Summary.Terminated),
		zap.Int("unchanged", plan.Summary.Unchanged),
	)

	if dryRunImport {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if plan.Summary.Added == 0 && plan.Summary.Terminated == 0 {
		l.Info("Roster already matches the import. Nothing to do.")
		return nil
	}

	// Step 2: Confirm before terminating anybody
	if plan.Summary.Terminated > 0 && !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	// Step 3: Apply
	result, err := runRosterImport(ctx, svc, filename, data, false)
	if err != nil {
		return err
	}
	if result.PersistErr != nil {
		return fmt.Errorf("import applied in memory but not persisted: %w", result.PersistErr)
	}

	l.Info("Import applied",
		zap.Int("added", result.Summary.Added),
		zap.Int("terminated", result.Summary.Terminated),
		zap.Int("unchanged", result.Summary.Unchanged),
	)
	return nil
}

// buildRosterService wires the roster service for CLI use. Storage is
// optional; without it the import archive is skipped.
func buildRosterService(ctx context.Context, cfg *config.Config, l *zap.Logger) (*employee.Service, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var client storage.Client
	if cfg.Storage.Endpoint != "" {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			l.Warn("Storage unavailable, import archive disabled", zap.Error(err))
			client = nil
		}
	}

	repo := employee.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate employee table: %w", err)
	}

	svc := employee.NewService(repo, employee.NewStore(), client, cfg.Storage.Bucket,
		cfg.Importer.Archive, cfg.Importer.ArchivePrefix,
		cfg.Importer.SheetURL, l)
	if err := svc.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	return svc, nil
}

func runRosterImport(ctx context.Context, svc *employee.Service, filename string, data []byte, dryRun bool) (*employee.ImportResult, error) {
	if fromSheet {
		return svc.ImportFromSheet(ctx, dryRun)
	}
	return svc.ImportCSV(ctx, filename, data, dryRun)
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm terminations: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}

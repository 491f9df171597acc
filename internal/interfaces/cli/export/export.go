package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"tansy/internal/application/ticket/usecases"
	"tansy/internal/infrastructure/config"
	"tansy/internal/infrastructure/database"
	"tansy/internal/infrastructure/migration"
	"tansy/internal/infrastructure/repository"
	"tansy/internal/shared/logger"
)

var (
	dbPath  string
	outPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tickets to CSV",
		Long:  `Write a CSV snapshot of every ticket, ordered by id, to a file or stdout.`,
		RunE:  run,
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// Exports log to stderr so stdout stays clean for piped CSV.
	if cfg.Logger.OutputPath == "" || cfg.Logger.OutputPath == "stdout" {
		cfg.Logger.OutputPath = "stderr"
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := migration.Up(sqlDB); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	exportUC := usecases.NewExportTicketsUseCase(
		repository.NewTicketRepository(db),
		logger.NewLogger(),
	)

	data, err := exportUC.Execute(cmd.Context())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	// Atomic write: a crash mid-export never leaves a torn file.
	if err := atomic.WriteFile(outPath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	logger.Info("tickets exported", "file", outPath, "bytes", len(data))
	return nil
}

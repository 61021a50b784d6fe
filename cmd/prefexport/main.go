package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/yourusername/telegram-translate-bot/config"
	"github.com/yourusername/telegram-translate-bot/internal/infrastructure/export"
	"github.com/yourusername/telegram-translate-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-translate-bot/pkg/logger"
)

var (
	// Flags
	outFile    string
	dsn        string
	sqlitePath string
	storeKind  string
)

var rootCmd = &cobra.Command{
	Use:   "prefexport",
	Short: "Export users' translation languages to XLSX",
	Long: `prefexport reads the bot's preference store and writes every user's
selected translation language to an Excel file.

The store is chosen from the same environment as the bot
(PREFS_STORAGE, POSTGRES_DSN, PREFS_DB_PATH) unless flags override it.

Example:
  prefexport                         # users.db -> user_languages_<time>.xlsx
  prefexport --dsn postgres://...    # read from Postgres
  prefexport --out langs.xlsx`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runExport,
}

func init() {
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file (default user_languages_<timestamp>.xlsx)")
	rootCmd.Flags().StringVar(&dsn, "dsn", "", "Postgres DSN (overrides POSTGRES_DSN)")
	rootCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite file (overrides PREFS_DB_PATH)")
	rootCmd.Flags().StringVar(&storeKind, "storage", "", "Storage kind: sqlite or postgres")
}

func main() {
	logger.Init()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	opts := storeOptionsFromEnv()
	if dsn != "" {
		opts.PostgresDSN = dsn
		if storeKind == "" {
			opts.Kind = storage.KindPostgres
		}
	}
	if sqlitePath != "" {
		opts.SQLitePath = sqlitePath
		if storeKind == "" && dsn == "" {
			opts.Kind = storage.KindSQLite
		}
	}
	if storeKind != "" {
		opts.Kind = storeKind
	}
	if opts.ResolveKind() == storage.KindMemory {
		return fmt.Errorf("memory storage has nothing to export")
	}

	path := outFile
	if path == "" {
		path = export.DefaultFileName(time.Now())
	}
	n, err := exportPreferences(cmd.Context(), opts, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ %d ta foydalanuvchi eksport qilindi: %s\n", n, path)
	return nil
}

func storeOptionsFromEnv() storage.Options {
	_ = godotenv.Load()
	return storage.Options{
		Kind:        os.Getenv("PREFS_STORAGE"),
		PostgresDSN: config.PostgresDSNFromEnv(),
		SQLitePath:  os.Getenv("PREFS_DB_PATH"),
	}
}

// exportPreferences store dagi barcha tanlovlarni faylga yozadi
func exportPreferences(ctx context.Context, opts storage.Options, path string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts.ConnectAttempts = 1

	repo, err := storage.NewPreferenceRepository(ctx, opts)
	if err != nil {
		return 0, err
	}
	defer repo.Close()

	prefs, err := repo.ListPreferences(ctx)
	if err != nil {
		return 0, err
	}
	data, err := export.BuildPreferencesXLSX(prefs)
	if err != nil {
		return 0, fmt.Errorf("build xlsx: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(prefs), nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/database"
)

// NewSeedCommand migrates a sqlite catalog database and upserts vehicles
// into it.
func NewSeedCommand(root *RootOptions) *cobra.Command {
	var dbPath, from string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create or update a sqlite catalog database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger("seed")
			if err != nil {
				return err
			}
			defer logger.Sync()

			vehicles := catalog.Default()
			if from != "" {
				if vehicles, err = catalog.LoadFile(from); err != nil {
					return err
				}
			}
			// validate before touching the database
			if _, err := catalog.NewStore(vehicles); err != nil {
				return fmt.Errorf("catalog %s: %w", displaySource(from), err)
			}

			if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
				return fmt.Errorf("mkdir db dir: %w", err)
			}
			if err := database.RunMigrations(dbPath); err != nil {
				return err
			}
			db, err := database.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			if err := database.SeedCatalog(cmd.Context(), db, vehicles); err != nil {
				return err
			}
			logger.Info("catalog seeded", "db", dbPath, "vehicles", len(vehicles))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d vehicles into %s\n", len(vehicles), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite database to create or update (required)")
	cmd.Flags().StringVar(&from, "from", "", "YAML catalog to seed from (default builtin)")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

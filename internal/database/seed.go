package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/database/repository"
)

// SeedCatalog upserts vehicles in the given order.
// It is idempotent and safe to run repeatedly against the same database.
func SeedCatalog(ctx context.Context, db *sql.DB, vehicles []catalog.Vehicle) error {
	repo := repository.NewVehicleRepo(db)
	for idx, v := range vehicles {
		if err := repo.Upsert(ctx, repository.FromCatalog(v, idx)); err != nil {
			return fmt.Errorf("seed %s: %w", v.ID, err)
		}
	}
	return nil
}

// LoadCatalog reads every vehicle from the catalog database at path.
func LoadCatalog(ctx context.Context, path string) ([]catalog.Vehicle, error) {
	db, err := OpenReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()

	rows, err := repository.NewVehicleRepo(db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	out := make([]catalog.Vehicle, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToCatalog())
	}
	return out, nil
}

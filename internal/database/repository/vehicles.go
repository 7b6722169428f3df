package repository

import (
	"context"
	"database/sql"
)

// VehicleRepo handles vehicles and their features.
type VehicleRepo struct {
	db *sql.DB
}

func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{db: db} }

// Upsert writes the vehicle row and replaces its feature list.
func (r *VehicleRepo) Upsert(ctx context.Context, v Vehicle) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := upsertVehicle(ctx, tx, v); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func upsertVehicle(ctx context.Context, tx *sql.Tx, v Vehicle) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO vehicles(id, name, type, location, rating, reviews, price_per_day, status, media_ref, media_alt, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 type=excluded.type,
	 location=excluded.location,
	 rating=excluded.rating,
	 reviews=excluded.reviews,
	 price_per_day=excluded.price_per_day,
	 status=excluded.status,
	 media_ref=excluded.media_ref,
	 media_alt=excluded.media_alt,
	 sort_order=excluded.sort_order;
	`, v.ID, v.Name, v.Type, v.Location, v.Rating, v.Reviews, v.PricePerDay, v.Status, v.MediaRef, v.MediaAlt, v.SortOrder)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicle_features WHERE vehicle_id = ?`, v.ID); err != nil {
		return err
	}
	for pos, f := range v.Features {
		if _, err := tx.ExecContext(ctx, `INSERT INTO vehicle_features(vehicle_id, position, feature) VALUES (?, ?, ?)`, v.ID, pos, f); err != nil {
			return err
		}
	}
	return nil
}

// List returns every vehicle ordered by sort order, features in position order.
func (r *VehicleRepo) List(ctx context.Context) ([]Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, type, location, rating, reviews, price_per_day, status, media_ref, media_alt, sort_order
	FROM vehicles
	ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Vehicle
	index := make(map[string]int)
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.Location, &v.Rating, &v.Reviews, &v.PricePerDay, &v.Status, &v.MediaRef, &v.MediaAlt, &v.SortOrder); err != nil {
			return nil, err
		}
		index[v.ID] = len(out)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	frows, err := r.db.QueryContext(ctx, `SELECT vehicle_id, feature FROM vehicle_features ORDER BY vehicle_id, position`)
	if err != nil {
		return nil, err
	}
	defer frows.Close()
	for frows.Next() {
		var id, feature string
		if err := frows.Scan(&id, &feature); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Features = append(out[i].Features, feature)
		}
	}
	return out, frows.Err()
}

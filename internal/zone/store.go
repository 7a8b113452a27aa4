package zone

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cicconee/lez-map/internal/geojson"
)

// Store persists export run history in Postgres.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) tx(ctx context.Context, txFunc func(*sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	if err := txFunc(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("err: %w, rbErr: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// SaveRun records one run with every zone it wrote, in a single
// transaction.
func (s *Store) SaveRun(ctx context.Context, features []geojson.Feature) (RunEntity, error) {
	run := RunEntity{TotalZones: len(features)}

	err := s.tx(ctx, func(tx *sql.Tx) error {
		if err := run.Insert(ctx, tx); err != nil {
			return err
		}

		for _, f := range features {
			zone := ZoneEntity{
				RunID: run.ID,
				Name:  f.Properties.Name,
			}
			if len(f.Geometry.Coordinates) > 0 {
				zone.Boundaries = f.Geometry.Coordinates[0]
			}

			if err := zone.Insert(ctx, tx); err != nil {
				return err
			}
		}

		return nil
	})

	return run, err
}

// SelectRuns returns the most recent runs, newest first.
func (s *Store) SelectRuns(ctx context.Context, limit int) ([]RunEntity, error) {
	query := `
		SELECT id, total_zones, created_at
		FROM lez_runs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunEntity
	for rows.Next() {
		var e RunEntity
		if err := e.scan(rows.Scan); err != nil {
			return nil, err
		}

		runs = append(runs, e)
	}

	return runs, rows.Err()
}

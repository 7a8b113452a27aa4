package zone

import (
	"context"
	"time"

	"github.com/cicconee/lez-map/internal/geometry"
)

// RunEntity is one recorded export run.
type RunEntity struct {
	ID         int
	TotalZones int
	CreatedAt  time.Time
}

func (e *RunEntity) Insert(ctx context.Context, db QueryRower) error {
	query := `
		INSERT INTO lez_runs(total_zones, created_at)
		VALUES($1, $2)
		RETURNING id`

	e.CreatedAt = time.Now().UTC()

	return db.QueryRowContext(ctx, query,
		e.TotalZones,
		e.CreatedAt,
	).Scan(&e.ID)
}

func (e *RunEntity) scan(scanFunc func(...any) error) error {
	return scanFunc(
		&e.ID,
		&e.TotalZones,
		&e.CreatedAt,
	)
}

// ZoneEntity is one zone written by a run.
type ZoneEntity struct {
	ID         int
	RunID      int
	Name       string
	Boundaries geometry.Polygon
}

func (z *ZoneEntity) Insert(ctx context.Context, db QueryRower) error {
	query := `
		INSERT INTO lez_run_zones(run_id, name)
		VALUES($1, $2)
		RETURNING id`

	if err := db.QueryRowContext(ctx, query, z.RunID, z.Name).Scan(&z.ID); err != nil {
		return err
	}

	for i, ring := range z.Boundaries {
		ringEntity := RingEntity{
			ZoneID:   z.ID,
			Position: i,
			Points:   ring,
		}

		if err := ringEntity.Insert(ctx, db); err != nil {
			return err
		}
	}

	return nil
}

// RingEntity is one boundary ring of a stored zone. Position keeps
// the rings in document order.
type RingEntity struct {
	ID       int
	ZoneID   int
	Position int
	Points   geometry.Ring
}

func (r *RingEntity) Insert(ctx context.Context, db QueryRower) error {
	query := `
		INSERT INTO lez_zone_rings(rz_id, position, boundary)
		VALUES($1, $2, $3)
		RETURNING id`

	return db.QueryRowContext(ctx, query,
		r.ZoneID,
		r.Position,
		r.Points.String(),
	).Scan(&r.ID)
}

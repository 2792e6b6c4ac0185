package dataset

import (
	"context"
	"fmt"
)

// Seed populates the grid with every (h, v, rot) combination of the given
// dimensions, starting from cell (1, 1). It is idempotent: combinations
// already present keep their row and their active flag.
func (s *Store) Seed(ctx context.Context, cols, rows int, rots []int) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", cols, rows)
	}
	if len(rots) == 0 {
		return fmt.Errorf("at least one rotation is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO positions (id, h, v, rot) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	for h := 1; h <= cols; h++ {
		for v := 1; v <= rows; v++ {
			for _, rot := range rots {
				id := fmt.Sprintf("pos-%d-%d-%03d", h, v, rot)
				if _, err := stmt.ExecContext(ctx, id, h, v, rot); err != nil {
					return fmt.Errorf("seed position %s: %w", id, err)
				}
			}
		}
	}

	return tx.Commit()
}

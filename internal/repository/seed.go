package repository

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// DataRepository holds bulk operations used by the dev-data loader.
type DataRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDataRepo(db *dbpg.DB) *DataRepository {
	return &DataRepository{db: db, strategy: defaultStrategy()}
}

// Truncate removes every booking, review, tour and user.
func (r *DataRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, `TRUNCATE bookings, reviews, tours, users CASCADE`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"
)

// GetOrCreateModel ensures a model row exists and returns its id. Repeated
// calls with identical inputs return the same id. The insert-if-absent is a
// single INSERT OR IGNORE so concurrent callers cannot race an existence
// check against the insert. An absent version is stored as "".
func GetOrCreateModel(ctx context.Context, db ExecQuerier, provider, modelName, modelVersion string) (int64, error) {
	query := `INSERT OR IGNORE INTO models (provider, model_name, model_version) VALUES (?, ?, ?)`
	if _, err := db.ExecContext(ctx, query, provider, modelName, modelVersion); err != nil {
		return 0, fmt.Errorf("failed to insert model: %w", err)
	}

	var id int64
	err := sqlscan.Get(ctx, db, &id,
		`SELECT id FROM models WHERE provider = ? AND model_name = ? AND model_version = ?`,
		provider, modelName, modelVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to look up model: %w", err)
	}
	return id, nil
}

// GetModelByID retrieves a model row by id.
func GetModelByID(ctx context.Context, db sqlscan.Querier, id int64) (*Model, error) {
	var m Model
	err := sqlscan.Get(ctx, db, &m,
		`SELECT id, provider, model_name, model_version FROM models WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/leadscore/internal/types"
)

// SaveSettings persists the operator's scoring settings. A single row holds
// the current settings document; history is not kept.
func (db *DB) SaveSettings(ctx context.Context, settings *types.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO settings (id, payload, updated_at)
		 VALUES (1, $1, NOW())
		 ON CONFLICT (id) DO UPDATE SET payload = $1, updated_at = NOW()`,
		payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings retrieves the stored settings, or the defaults when none have
// been saved yet.
func (db *DB) GetSettings(ctx context.Context) (*types.Settings, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx, `SELECT payload FROM settings WHERE id = 1`).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var settings types.Settings
	if err := json.Unmarshal(payload, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &settings, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"taskflow/internal/model"
	repo "taskflow/internal/task/repository"
)

// GetProfile returns a zero-value Profile when the user has none.
func (r *implRepository) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	var p model.Profile
	err := r.db.QueryRowContext(ctx,
		`SELECT name, picture FROM profiles WHERE user_id = ?`, userID,
	).Scan(&p.Name, &p.ProfilePicture)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.Profile{}, repo.ErrFailedToGet
	}
	return p, nil
}

// UpsertProfile stores p as the user's profile.
func (r *implRepository) UpsertProfile(ctx context.Context, userID string, p model.Profile) error {
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO profiles (user_id, name, picture, updated_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT(user_id) DO UPDATE SET name = excluded.name, picture = excluded.picture, updated_at = excluded.updated_at`,
			userID, p.Name, p.ProfilePicture, r.now().UnixMilli(),
		)
		if err != nil {
			return err
		}
		return r.touch(ctx, tx, userID)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProfile"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/vibe/internal/gamify"
)

// ActivityRepo stores the recent activity feed.
type ActivityRepo struct {
	db *sql.DB
}

// Append records an activity entry. An empty ID is filled with a UUID and a
// zero time with now.
func (r *ActivityRepo) Append(ctx context.Context, username string, a gamify.Activity) (gamify.Activity, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.At.IsZero() {
		a.At = time.Now()
	}
	err := withBusyRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO activity (id, username, kind, action, at_ms) VALUES (?, ?, ?, ?, ?)`,
			a.ID, username, string(a.Kind), a.Action, a.At.UnixMilli(),
		)
		return err
	})
	if err != nil {
		return gamify.Activity{}, fmt.Errorf("append activity for %q: %w", username, err)
	}
	return a, nil
}

// Recent returns up to limit entries for username, newest first.
func (r *ActivityRepo) Recent(ctx context.Context, username string, limit int) ([]gamify.Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, action, at_ms FROM activity
		WHERE username = ?
		ORDER BY at_ms DESC, id
		LIMIT ?`, username, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity for %q: %w", username, err)
	}
	defer rows.Close()

	var out []gamify.Activity
	for rows.Next() {
		var (
			a    gamify.Activity
			kind string
			atMs int64
		)
		if err := rows.Scan(&a.ID, &kind, &a.Action, &atMs); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Kind = gamify.ActivityKind(kind)
		a.At = time.UnixMilli(atMs)
		out = append(out, a)
	}
	return out, rows.Err()
}

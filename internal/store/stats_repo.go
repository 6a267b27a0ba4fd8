package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abhisek/vibe/internal/gamify"
)

// StatsRepo stores the gamification summary per user.
type StatsRepo struct {
	db *sql.DB
}

// Summary returns the stored summary, or a zero Summary when none exists.
func (r *StatsRepo) Summary(ctx context.Context, username string) (gamify.Summary, error) {
	var s gamify.Summary
	err := r.db.QueryRowContext(ctx, `
		SELECT level, xp, max_xp, checkins, streak, events_attended, friends_count, hours_on_campus
		FROM stats WHERE username = ?`, username,
	).Scan(&s.Level, &s.XP, &s.MaxXP, &s.Checkins, &s.Streak, &s.EventsAttended, &s.FriendsCount, &s.HoursOnCampus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gamify.Summary{}, nil
		}
		return gamify.Summary{}, fmt.Errorf("query stats %q: %w", username, err)
	}
	return s, nil
}

// Put replaces the summary for username. The profile must exist.
func (r *StatsRepo) Put(ctx context.Context, username string, s gamify.Summary) error {
	err := withBusyRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO stats (username, level, xp, max_xp, checkins, streak, events_attended, friends_count, hours_on_campus)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (username) DO UPDATE SET
				level = excluded.level,
				xp = excluded.xp,
				max_xp = excluded.max_xp,
				checkins = excluded.checkins,
				streak = excluded.streak,
				events_attended = excluded.events_attended,
				friends_count = excluded.friends_count,
				hours_on_campus = excluded.hours_on_campus`,
			username, s.Level, s.XP, s.MaxXP, s.Checkins, s.Streak, s.EventsAttended, s.FriendsCount, s.HoursOnCampus,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("put stats %q: %w", username, err)
	}
	return nil
}

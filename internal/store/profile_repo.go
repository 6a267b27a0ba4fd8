package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/vibe/internal/profile"
)

// ProfileRepo reads and writes canonical profiles.
type ProfileRepo struct {
	db      *sql.DB
	catalog profile.Catalog
	now     func() time.Time
}

// Profiles returns a profile repository that validates writes against catalog.
func (s *Store) Profiles(catalog profile.Catalog) *ProfileRepo {
	return &ProfileRepo{db: s.db, catalog: catalog, now: time.Now}
}

// Get returns the canonical profile for username, or ErrNotFound.
func (r *ProfileRepo) Get(ctx context.Context, username string) (*profile.Canonical, error) {
	var (
		c         = profile.Canonical{Username: username}
		interests string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT full_name, avatar_url, year_of_study, interests, free_time, bio
		FROM profiles WHERE username = ?`, username,
	).Scan(&c.DisplayName, &c.AvatarURL, &c.YearOfStudy, &interests, &c.FreeTime, &c.Bio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query profile %q: %w", username, err)
	}
	if err := json.Unmarshal([]byte(interests), &c.Interests); err != nil {
		return nil, fmt.Errorf("decode interests for %q: %w", username, err)
	}
	if c.Interests == nil {
		c.Interests = []string{}
	}
	return &c, nil
}

// Upsert writes a whole canonical profile, including the avatar URL, in
// one transaction.
func (r *ProfileRepo) Upsert(ctx context.Context, c *profile.Canonical) error {
	if c == nil || c.Username == "" {
		return errors.New("upsert profile: username is required")
	}
	f := profile.Fields{
		FullName:    c.DisplayName,
		YearOfStudy: c.YearOfStudy,
		Interests:   c.Interests,
		FreeTime:    c.FreeTime,
		Bio:         c.Bio,
	}
	if f.Interests == nil {
		f.Interests = []string{}
	}
	if err := ValidateFields(r.catalog, f); err != nil {
		return err
	}

	err := withBusyRetry(ctx, func() error {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if err := r.writeFields(ctx, tx, c.Username, f); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE profiles SET avatar_url = ? WHERE username = ?`, c.AvatarURL, c.Username,
		); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("upsert profile %q: %w", c.Username, err)
	}
	return nil
}

// Save validates and persists the editable fields for username, creating
// the profile if needed. Validation failures are *ValidationError.
func (r *ProfileRepo) Save(ctx context.Context, username string, f profile.Fields) error {
	if username == "" {
		return errors.New("save profile: username is required")
	}
	if err := ValidateFields(r.catalog, f); err != nil {
		return err
	}
	err := withBusyRetry(ctx, func() error {
		return r.writeFields(ctx, r.db, username, f)
	})
	if err != nil {
		return fmt.Errorf("save profile %q: %w", username, err)
	}
	return nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// writeFields upserts the editable columns. The avatar is left alone.
func (r *ProfileRepo) writeFields(ctx context.Context, db execer, username string, f profile.Fields) error {
	interests, err := json.Marshal(f.Interests)
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO profiles (username, full_name, year_of_study, interests, free_time, bio, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET
			full_name = excluded.full_name,
			year_of_study = excluded.year_of_study,
			interests = excluded.interests,
			free_time = excluded.free_time,
			bio = excluded.bio,
			updated_at = excluded.updated_at`,
		username, f.FullName, f.YearOfStudy, string(interests), f.FreeTime, f.Bio, r.now().UnixMilli(),
	)
	return err
}

// Delete removes a user's profile along with their stats and activity.
func (r *ProfileRepo) Delete(ctx context.Context, username string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("delete profile %q: %w", username, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Saver binds the repository to one user as the editor's save callback.
func (r *ProfileRepo) Saver(username string) profile.Saver {
	return profile.SaverFunc(func(ctx context.Context, f profile.Fields) error {
		return r.Save(ctx, username, f)
	})
}

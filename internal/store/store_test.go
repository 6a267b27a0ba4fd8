package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vibe/internal/gamify"
	"github.com/abhisek/vibe/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReopenSkipsAppliedMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	var n int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestProfileGetMissing(t *testing.T) {
	repo := openTestStore(t).Profiles(profile.DefaultCatalog())

	_, err := repo.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileSaveAndGet(t *testing.T) {
	repo := openTestStore(t).Profiles(profile.DefaultCatalog())
	ctx := context.Background()

	err := repo.Save(ctx, "alex", profile.Fields{
		FullName:    "Alex Kim",
		YearOfStudy: "3rd Year",
		Interests:   []string{"Gaming", "Coding"},
		FreeTime:    "Fridays",
		Bio:         "hello",
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, &profile.Canonical{
		DisplayName: "Alex Kim",
		Username:    "alex",
		YearOfStudy: "3rd Year",
		Interests:   []string{"Gaming", "Coding"},
		FreeTime:    "Fridays",
		Bio:         "hello",
	}, got)
}

func TestProfileSaveKeepsAvatar(t *testing.T) {
	repo := openTestStore(t).Profiles(profile.DefaultCatalog())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &profile.Canonical{Username: "alex", AvatarURL: "https://cdn/alex.png"}))
	require.NoError(t, repo.Save(ctx, "alex", profile.Fields{Interests: []string{}, Bio: "updated"}))

	got, err := repo.Get(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/alex.png", got.AvatarURL)
	assert.Equal(t, "updated", got.Bio)
	assert.Equal(t, []string{}, got.Interests)
}

func TestProfileUpsertIsAtomic(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles(profile.DefaultCatalog())
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx, `
		CREATE TRIGGER reject_avatar BEFORE UPDATE OF avatar_url ON profiles
		WHEN NEW.avatar_url = 'https://bad/avatar.png'
		BEGIN SELECT RAISE(ABORT, 'avatar rejected'); END`)
	require.NoError(t, err)

	err = repo.Upsert(ctx, &profile.Canonical{
		Username:  "alex",
		Bio:       "half written",
		AvatarURL: "https://bad/avatar.png",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "avatar rejected")

	_, err = repo.Get(ctx, "alex")
	assert.ErrorIs(t, err, ErrNotFound, "fields must roll back with the avatar")

	require.NoError(t, repo.Upsert(ctx, &profile.Canonical{Username: "alex", AvatarURL: "https://cdn/alex.png"}))
	got, err := repo.Get(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/alex.png", got.AvatarURL)
}

func TestProfileSaveRejectsContractViolations(t *testing.T) {
	repo := openTestStore(t).Profiles(profile.DefaultCatalog())
	ctx := context.Background()

	tests := []struct {
		name   string
		fields profile.Fields
		field  string
		reason string
	}{
		{
			name:   "bio too long",
			fields: profile.Fields{Interests: []string{}, Bio: strings.Repeat("x", 151)},
			field:  "bio",
			reason: "Bio must be at most 150 characters",
		},
		{
			name:   "unknown year",
			fields: profile.Fields{Interests: []string{}, YearOfStudy: "5th Year"},
			field:  "year_of_study",
			reason: "Please pick a year of study from the list",
		},
		{
			name:   "duplicate interests",
			fields: profile.Fields{Interests: []string{"Gym", "Gym"}},
			field:  "interests",
			reason: "Interests must be unique",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Save(ctx, "alex", tt.fields)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.reason, profile.FailureMessage(err))
		})
	}

	_, err := repo.Get(ctx, "alex")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileSaverThroughEditor(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles(profile.DefaultCatalog())
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, &profile.Canonical{Username: "alex", Interests: []string{"Music"}}))

	canonical, err := repo.Get(ctx, "alex")
	require.NoError(t, err)

	e := profile.NewEditor(profile.DefaultCatalog(), repo.Saver("alex"))
	e.Reconcile(canonical, true)
	e.SetField(profile.FieldYearOfStudy, "Graduate")
	e.ToggleInterest("Music")
	e.ToggleInterest("Reading")
	e.SetBio(strings.Repeat("z", 400))
	require.NoError(t, e.Save(ctx))

	got, err := repo.Get(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, "Graduate", got.YearOfStudy)
	assert.Equal(t, []string{"Reading"}, got.Interests)
	assert.Len(t, got.Bio, 150)
	assert.Equal(t, []string{"Music"}, canonical.Interests, "canonical profile must not be mutated")
}

func TestProfileSaverRejectionSurfacesReason(t *testing.T) {
	repo := openTestStore(t).Profiles(profile.DefaultCatalog())
	e := profile.NewEditor(profile.DefaultCatalog(), repo.Saver("alex"))
	e.Reconcile(&profile.Canonical{Username: "alex"}, true)
	e.SetField(profile.FieldYearOfStudy, "Postdoc")

	err := e.Save(context.Background())
	require.Error(t, err)
	assert.Equal(t, profile.SaveStatus{
		State:   profile.SaveError,
		Message: "Please pick a year of study from the list",
	}, e.Status())
	assert.Equal(t, "Postdoc", e.Draft().YearOfStudy)
}

func TestProfileDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Profiles(profile.DefaultCatalog())
	require.NoError(t, repo.Upsert(ctx, &profile.Canonical{Username: "alex"}))
	require.NoError(t, s.Stats().Put(ctx, "alex", gamify.Summary{Level: 2}))
	_, err := s.Activity().Append(ctx, "alex", gamify.Activity{Kind: gamify.ActivityCheckin, Action: "Checked in"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "alex"))
	assert.ErrorIs(t, repo.Delete(ctx, "alex"), ErrNotFound)

	sum, err := s.Stats().Summary(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, gamify.Summary{}, sum)

	feed, err := s.Activity().Recent(ctx, "alex", 5)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestStatsPutAndSummary(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Profiles(profile.DefaultCatalog()).Upsert(ctx, &profile.Canonical{Username: "alex"}))

	want := gamify.Summary{Level: 4, XP: 120, MaxXP: 500, Checkins: 9, Streak: 2, EventsAttended: 1, FriendsCount: 3, HoursOnCampus: 20}
	require.NoError(t, s.Stats().Put(ctx, "alex", want))
	want.Streak = 3
	require.NoError(t, s.Stats().Put(ctx, "alex", want))

	got, err := s.Stats().Summary(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStatsPutRequiresProfile(t *testing.T) {
	s := openTestStore(t)
	err := s.Stats().Put(context.Background(), "ghost", gamify.Summary{Level: 1})
	assert.Error(t, err)
}

func TestActivityRecentNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Profiles(profile.DefaultCatalog()).Upsert(ctx, &profile.Canonical{Username: "alex"}))

	base := time.Now().Truncate(time.Millisecond)
	for i, action := range []string{"oldest", "middle", "newest"} {
		_, err := s.Activity().Append(ctx, "alex", gamify.Activity{
			Kind:   gamify.ActivityEvent,
			Action: action,
			At:     base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	feed, err := s.Activity().Recent(ctx, "alex", 2)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "newest", feed[0].Action)
	assert.Equal(t, "middle", feed[1].Action)
	assert.Equal(t, gamify.ActivityEvent, feed[0].Kind)
	assert.True(t, feed[0].At.Equal(base.Add(2*time.Hour)))
	assert.NotEmpty(t, feed[0].ID)
}

// lockedDBError holds a write transaction on one connection and returns
// the error a second connection gets when it tries to write.
func lockedDBError(t *testing.T) error {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "locked.db")

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	tx, err := s.DB().BeginTx(ctx, nil)
	require.NoError(t, err)
	t.Cleanup(func() { tx.Rollback() })
	_, err = tx.ExecContext(ctx, `INSERT INTO profiles (username) VALUES ('holder')`)
	require.NoError(t, err)

	other, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	other.SetMaxOpenConns(1)
	t.Cleanup(func() { other.Close() })
	_, err = other.ExecContext(ctx, "PRAGMA busy_timeout = 0")
	require.NoError(t, err)

	_, err = other.ExecContext(ctx, `INSERT INTO profiles (username) VALUES ('waiter')`)
	require.Error(t, err)
	return err
}

func TestIsBusy(t *testing.T) {
	locked := lockedDBError(t)
	assert.True(t, isBusy(locked))
	assert.True(t, isBusy(fmt.Errorf("save profile: %w", locked)))

	assert.False(t, isBusy(errors.New("database is locked")))
	assert.False(t, isBusy(nil))

	_, err := openTestStore(t).DB().Exec(`SELECT * FROM no_such_table`)
	require.Error(t, err)
	assert.False(t, isBusy(err))
}

func TestWithBusyRetryStopsOnOtherErrors(t *testing.T) {
	calls := 0
	err := withBusyRetry(context.Background(), func() error {
		calls++
		return errors.New("constraint failed")
	})
	assert.EqualError(t, err, "constraint failed")
	assert.Equal(t, 1, calls)
}

func TestWithBusyRetryRetriesBusy(t *testing.T) {
	locked := lockedDBError(t)
	calls := 0
	err := withBusyRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return locked
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

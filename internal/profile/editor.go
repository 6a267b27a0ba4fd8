package profile

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// Saver persists a submitted draft. It is the external save callback.
type Saver interface {
	SaveProfile(ctx context.Context, fields Fields) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(ctx context.Context, fields Fields) error

func (f SaverFunc) SaveProfile(ctx context.Context, fields Fields) error {
	return f(ctx, fields)
}

// Submission is one accepted save request. It is tagged with the session it
// was issued for so a late result cannot land on a newer session.
type Submission struct {
	SessionID string
	Fields    Fields

	saver Saver
}

// Run invokes the external save for this submission. Callers run it exactly
// once, off the UI loop, and pass the result to Editor.Complete.
func (s Submission) Run(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	return s.saver.SaveProfile(ctx, s.Fields)
}

// Option configures an Editor.
type Option func(*Editor)

// WithCloseHook sets the function notified when the overlay should close.
func WithCloseHook(fn func() error) Option {
	return func(e *Editor) { e.closeHook = fn }
}

// WithLogger sets the logger used for save lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// Editor is the profile overlay's state machine: it owns the draft and the
// view state for one overlay instance. It is not safe for concurrent use;
// all calls belong on the UI loop.
type Editor struct {
	catalog   Catalog
	saver     Saver
	closeHook func() error
	logger    *slog.Logger

	canonical *Canonical
	open      bool
	sessionID string

	draft   Draft
	mode    ViewMode
	section Section
	status  SaveStatus
}

// NewEditor creates a closed editor. Call Reconcile to open it.
func NewEditor(catalog Catalog, saver Saver, opts ...Option) *Editor {
	e := &Editor{
		catalog: catalog,
		saver:   saver,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		draft:   NewDraft(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile syncs the editor with the caller's open flag and canonical
// profile. On open, or on a new canonical profile while open, it reseeds the
// draft and resets the view and save state, discarding unsaved edits. While
// closed it leaves the draft alone. It reports whether a reseed happened.
func (e *Editor) Reconcile(canonical *Canonical, isOpen bool) bool {
	if !isOpen {
		e.open = false
		return false
	}
	if e.open && canonical == e.canonical {
		return false
	}

	e.open = true
	e.canonical = canonical
	e.sessionID = uuid.NewString()
	e.draft = NewDraft(canonical)
	e.mode = ViewFlashcard
	e.section = SectionOverview
	e.status = SaveStatus{State: SaveIdle}

	e.logger.Debug("profile session started", "session", e.sessionID)
	return true
}

// SetField assigns display name, year of study or free-time note.
func (e *Editor) SetField(f Field, value string) {
	e.draft.SetField(f, value)
}

// SetBio stores the bio, truncated to MaxBioLength characters.
func (e *Editor) SetBio(text string) {
	e.draft.SetBio(text)
}

// ToggleInterest adds or removes a catalog interest.
func (e *Editor) ToggleInterest(label string) {
	e.draft.ToggleInterest(e.catalog, label)
}

// SetViewMode switches between card and form. The draft is kept.
func (e *Editor) SetViewMode(m ViewMode) {
	e.mode = m
}

// SetSection selects the flashcard tab.
func (e *Editor) SetSection(s Section) {
	e.section = s
}

// Submit starts a save of the current draft. It returns false without side
// effects when the editor is closed or a save is already in flight.
func (e *Editor) Submit() (Submission, bool) {
	if !e.open || e.status.State == SaveSaving {
		return Submission{}, false
	}
	e.status = SaveStatus{State: SaveSaving}
	sub := Submission{
		SessionID: e.sessionID,
		Fields:    e.draft.Fields(),
		saver:     e.saver,
	}
	e.logger.Info("profile save started", "session", sub.SessionID)
	return sub, true
}

// Complete applies the result of a submission. Results for a closed or
// replaced session are dropped and Complete returns false. On success the
// overlay is closed; on failure the draft is kept for a retry.
func (e *Editor) Complete(sub Submission, err error) bool {
	if !e.open || sub.SessionID != e.sessionID || e.status.State != SaveSaving {
		e.logger.Info("dropping stale profile save result", "session", sub.SessionID, "current", e.sessionID)
		return false
	}

	if err != nil {
		msg := FailureMessage(err)
		e.status = SaveStatus{State: SaveError, Message: msg}
		e.logger.Warn("profile save failed", "session", sub.SessionID, "error", err)
		return true
	}

	e.status = SaveStatus{State: SaveSuccess}
	e.logger.Info("profile saved", "session", sub.SessionID)
	e.close()
	return true
}

// Save runs Submit, the external save and Complete inline. It is meant for
// callers without an event loop.
func (e *Editor) Save(ctx context.Context) error {
	sub, ok := e.Submit()
	if !ok {
		return ErrNotSubmittable
	}
	err := sub.Run(ctx)
	e.Complete(sub, err)
	if err != nil {
		return &SaveFailedError{Reason: FailureMessage(err), Err: err}
	}
	return nil
}

// Close dismisses the overlay. An in-flight save keeps running but its
// result will be dropped.
func (e *Editor) Close() {
	if !e.open {
		return
	}
	e.close()
}

func (e *Editor) close() {
	e.open = false
	if e.closeHook == nil {
		return
	}
	if err := e.closeHook(); err != nil {
		e.logger.Warn("close hook failed", "session", e.sessionID, "error", err)
	}
}

// Err returns the current save failure, or nil.
func (e *Editor) Err() error {
	if e.status.State != SaveError {
		return nil
	}
	return &SaveFailedError{Reason: e.status.Message}
}

func (e *Editor) IsOpen() bool          { return e.open }
func (e *Editor) SessionID() string     { return e.sessionID }
func (e *Editor) ViewMode() ViewMode    { return e.mode }
func (e *Editor) Section() Section      { return e.section }
func (e *Editor) Status() SaveStatus    { return e.status }
func (e *Editor) Catalog() Catalog      { return e.catalog }
func (e *Editor) Canonical() *Canonical { return e.canonical }

// Draft returns a copy of the working draft.
func (e *Editor) Draft() Draft {
	d := e.draft
	d.Interests = slices.Clone(e.draft.Interests)
	return d
}

// Saving reports whether a save is in flight.
func (e *Editor) Saving() bool {
	return e.status.State == SaveSaving
}

// DisplayName is the name shown on the card.
func (e *Editor) DisplayName() string {
	return DisplayNameFor(e.draft, e.canonical)
}

package profile

import (
	"github.com/abhisek/vibe/internal/gamify"
	prof "github.com/abhisek/vibe/internal/profile"
)

// profileLoadedMsg carries the canonical profile and the card's read models.
type profileLoadedMsg struct {
	Canonical *prof.Canonical
	Summary   gamify.Summary
	Activity  []gamify.Activity
	Err       error
}

// saveResultMsg is the outcome of one submission.
type saveResultMsg struct {
	Submission prof.Submission
	Err        error
}

// SavedMsg is sent to the screen below the overlay after a successful save
// has closed it.
type SavedMsg struct {
	Username string
}

package profile

import (
	"errors"
	"strings"
)

// DefaultSaveErrorMessage is shown when a save fails without a readable reason.
const DefaultSaveErrorMessage = "Failed to update profile"

// ErrNotSubmittable is returned by Editor.Save when the editor is closed or a
// save is already in flight.
var ErrNotSubmittable = errors.New("profile editor is not accepting submissions")

// SaveFailedError is the only failure the editor surfaces: the external save
// rejected the draft.
type SaveFailedError struct {
	Reason string
	Err    error
}

func (e *SaveFailedError) Error() string {
	return e.Reason
}

func (e *SaveFailedError) Unwrap() error { return e.Err }

// reasoner is implemented by errors that carry a user-facing message
// separate from their technical description.
type reasoner interface {
	Reason() string
}

// FailureMessage extracts the message shown to the user for a failed save.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	var r reasoner
	if errors.As(err, &r) {
		if msg := strings.TrimSpace(r.Reason()); msg != "" {
			return msg
		}
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return DefaultSaveErrorMessage
}

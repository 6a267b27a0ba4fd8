package profile

// MaxBioLength is the maximum bio length in characters (runes).
const MaxBioLength = 150

// Canonical is the persisted profile owned by the profile-data provider.
// The editor only reads it; identity is pointer identity.
type Canonical struct {
	DisplayName string   `json:"full_name"`
	Username    string   `json:"username"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	YearOfStudy string   `json:"year_of_study"`
	Interests   []string `json:"interests"`
	FreeTime    string   `json:"free_time"`
	Bio         string   `json:"bio"`
}

// Fields is the payload handed to the external save operation. The JSON
// keys are the profile store's wire contract.
type Fields struct {
	FullName    string   `json:"full_name"`
	YearOfStudy string   `json:"year_of_study"`
	Interests   []string `json:"interests"`
	FreeTime    string   `json:"free_time"`
	Bio         string   `json:"bio"`
}

// Field names a free-form draft field settable through SetField.
type Field string

const (
	FieldDisplayName Field = "full_name"
	FieldYearOfStudy Field = "year_of_study"
	FieldFreeTime    Field = "free_time"
)

// ViewMode selects between the read-only card and the edit form.
type ViewMode int

const (
	ViewFlashcard ViewMode = iota
	ViewEdit
)

func (m ViewMode) String() string {
	switch m {
	case ViewFlashcard:
		return "flashcard"
	case ViewEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Section is the tab shown on the flashcard.
type Section int

const (
	SectionOverview Section = iota
	SectionBadges
	SectionActivity
)

// AllSections returns the flashcard sections in tab order.
func AllSections() []Section {
	return []Section{SectionOverview, SectionBadges, SectionActivity}
}

func (s Section) String() string {
	switch s {
	case SectionOverview:
		return "overview"
	case SectionBadges:
		return "badges"
	case SectionActivity:
		return "activity"
	default:
		return "unknown"
	}
}

// SaveState is the phase of the save state machine.
type SaveState int

const (
	SaveIdle SaveState = iota
	SaveSaving
	SaveError
	SaveSuccess
)

func (s SaveState) String() string {
	switch s {
	case SaveIdle:
		return "idle"
	case SaveSaving:
		return "saving"
	case SaveError:
		return "error"
	case SaveSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// SaveStatus is the current save state plus the error message when
// State is SaveError.
type SaveStatus struct {
	State   SaveState
	Message string
}

func (s SaveStatus) String() string {
	if s.State == SaveError {
		return "error(" + s.Message + ")"
	}
	return s.State.String()
}

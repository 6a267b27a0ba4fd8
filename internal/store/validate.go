package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/vibe/internal/profile"
)

// schemaCache caches compiled field schemas by catalog fingerprint.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ValidationError reports a save payload that breaks the profile store's
// wire contract.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid profile fields: %v", e.Err)
	}
	return fmt.Sprintf("invalid profile field %q: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Reason is the message shown to the user.
func (e *ValidationError) Reason() string {
	switch e.Field {
	case "full_name":
		return "Name is invalid"
	case "year_of_study":
		return "Please pick a year of study from the list"
	case "interests":
		return "Interests must be unique"
	case "free_time":
		return "Free time is invalid"
	case "bio":
		return fmt.Sprintf("Bio must be at most %d characters", profile.MaxBioLength)
	default:
		return "Profile details were rejected"
	}
}

// fieldsSchema describes the snake_case save payload.
func fieldsSchema(c profile.Catalog) map[string]any {
	years := []any{""}
	for _, y := range c.YearOptions() {
		years = append(years, y)
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"full_name":     map[string]any{"type": "string"},
			"year_of_study": map[string]any{"type": "string", "enum": years},
			"interests": map[string]any{
				"type":        "array",
				"uniqueItems": true,
				"items":       map[string]any{"type": "string", "minLength": 1},
			},
			"free_time": map[string]any{"type": "string"},
			"bio":       map[string]any{"type": "string", "maxLength": profile.MaxBioLength},
		},
		"required":             []any{"full_name", "year_of_study", "interests", "free_time", "bio"},
		"additionalProperties": false,
	}
}

// ValidateFields checks a save payload against the store contract for the
// given catalog. Returns *ValidationError on failure.
func ValidateFields(c profile.Catalog, f profile.Fields) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse fields: %w", err)
	}

	compiled, err := compiledSchema(c)
	if err != nil {
		return err
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ValidationError{Field: failingField(err), Err: err}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(c profile.Catalog) (*jsonschema.Schema, error) {
	key := strings.Join(c.YearOptions(), "\x1f")
	if cached, ok := schemaCache.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, so round-trip the definition.
	defBytes, err := json.Marshal(fieldsSchema(c))
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	comp := jsonschema.NewCompiler()
	const url = "schema://profile-fields.json"
	if err := comp.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := comp.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(key, compiled)
	return compiled, nil
}

// failingField returns the top-level payload key of the deepest schema
// violation, or "" when it cannot be determined.
func failingField(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return ""
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if len(ve.InstanceLocation) == 0 {
		return ""
	}
	return ve.InstanceLocation[0]
}

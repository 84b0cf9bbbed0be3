// Package tripform owns the mutable trip request draft: field edits,
// interest toggles, pre-submission validation, and the single text-to-number
// coercion boundary.
package tripform

import (
	"fmt"
	"strconv"
	"strings"

	"wanderwise-client/internal/common/errors"
	"wanderwise-client/internal/models"
)

// Form field names, matching the wire names of the coerced payload.
const (
	FieldDestination  = "destination"
	FieldBudget       = "budget"
	FieldDurationDays = "duration_days"
	FieldStartDate    = "start_date"
	FieldTravelStyle  = "travel_style"
)

// Draft is the in-progress, user-editable trip request. Budget and
// DurationDays are raw text until ToRequestPayload coerces them.
type Draft struct {
	Destination  string
	Budget       string
	DurationDays string
	StartDate    string
	Interests    []string
	TravelStyle  models.TravelStyle
}

// Form holds the single mutable draft for one session.
type Form struct {
	draft Draft
}

func New() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// SetField replaces one field's value. No cross-field validation happens at
// edit time. Interests are toggled through ToggleInterest, not set here.
func (f *Form) SetField(name, value string) error {
	switch name {
	case FieldDestination:
		f.draft.Destination = value
	case FieldBudget:
		f.draft.Budget = value
	case FieldDurationDays:
		f.draft.DurationDays = value
	case FieldStartDate:
		f.draft.StartDate = value
	case FieldTravelStyle:
		style := models.TravelStyle(value)
		if !style.Valid() {
			return fmt.Errorf("unknown travel style %q", value)
		}
		f.draft.TravelStyle = style
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	return nil
}

// ToggleInterest removes the interest if present, otherwise appends it.
// Two toggles of the same interest cancel out.
func (f *Form) ToggleInterest(interest string) {
	for i, existing := range f.draft.Interests {
		if existing == interest {
			f.draft.Interests = append(f.draft.Interests[:i], f.draft.Interests[i+1:]...)
			return
		}
	}
	f.draft.Interests = append(f.draft.Interests, interest)
}

// HasInterest reports whether the interest is currently selected.
func (f *Form) HasInterest(interest string) bool {
	for _, existing := range f.draft.Interests {
		if existing == interest {
			return true
		}
	}
	return false
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft {
	d := f.draft
	d.Interests = append([]string(nil), f.draft.Interests...)
	return d
}

// ValidateForSubmission checks completeness of the four required fields and
// that budget and duration parse to positive integers. It returns a
// VALIDATION_FAILED error enumerating every offending field, and must run
// before any network activity.
func (f *Form) ValidateForSubmission() error {
	var fields []errors.FieldError

	if strings.TrimSpace(f.draft.Destination) == "" {
		fields = append(fields, errors.FieldError{Field: FieldDestination, Message: "required"})
	}
	if msg := checkPositiveInt(f.draft.Budget); msg != "" {
		fields = append(fields, errors.FieldError{Field: FieldBudget, Message: msg})
	}
	if msg := checkPositiveInt(f.draft.DurationDays); msg != "" {
		fields = append(fields, errors.FieldError{Field: FieldDurationDays, Message: msg})
	}
	if strings.TrimSpace(f.draft.StartDate) == "" {
		fields = append(fields, errors.FieldError{Field: FieldStartDate, Message: "required"})
	}

	if len(fields) > 0 {
		return errors.NewValidationFailedError(fields)
	}
	return nil
}

// ToRequestPayload converts the draft into a submission-ready request with
// budget and duration coerced from text to integers. Coercion failure is a
// validation failure, not a runtime fault.
func (f *Form) ToRequestPayload() (*models.TripRequest, error) {
	if err := f.ValidateForSubmission(); err != nil {
		return nil, err
	}

	budget, _ := strconv.Atoi(strings.TrimSpace(f.draft.Budget))
	duration, _ := strconv.Atoi(strings.TrimSpace(f.draft.DurationDays))

	return &models.TripRequest{
		Destination:  strings.TrimSpace(f.draft.Destination),
		Budget:       budget,
		DurationDays: duration,
		StartDate:    strings.TrimSpace(f.draft.StartDate),
		Interests:    append([]string(nil), f.draft.Interests...),
		TravelStyle:  string(f.draft.TravelStyle),
	}, nil
}

// Reset replaces the draft with the default trip request.
func (f *Form) Reset() {
	f.draft = Draft{
		Interests:   nil,
		TravelStyle: models.DefaultTravelStyle,
	}
}

func checkPositiveInt(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "required"
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return "must be a whole number"
	}
	if n <= 0 {
		return "must be positive"
	}
	return ""
}

package tripform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderwise-client/internal/common/errors"
	"wanderwise-client/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func fillValidDraft(t *testing.T, f *Form) {
	require.NoError(t, f.SetField(FieldDestination, "Tokyo"))
	require.NoError(t, f.SetField(FieldBudget, "3000"))
	require.NoError(t, f.SetField(FieldDurationDays, "7"))
	require.NoError(t, f.SetField(FieldStartDate, "2025-09-10"))
}

func fieldNames(err error) []string {
	fields := errors.ValidationFields(err)
	names := make([]string, len(fields))
	for i, fe := range fields {
		names[i] = fe.Field
	}
	return names
}

// ==========================
// Field Edits
// ==========================

func TestForm_SetField(t *testing.T) {
	f := New()

	require.NoError(t, f.SetField(FieldDestination, "Paris"))
	require.NoError(t, f.SetField(FieldBudget, "2000"))
	require.NoError(t, f.SetField(FieldTravelStyle, "luxury"))

	draft := f.Draft()
	assert.Equal(t, "Paris", draft.Destination)
	assert.Equal(t, "2000", draft.Budget)
	assert.Equal(t, models.StyleLuxury, draft.TravelStyle)
}

func TestForm_SetField_Unknown(t *testing.T) {
	f := New()
	assert.Error(t, f.SetField("currency", "EUR"))
	assert.Error(t, f.SetField(FieldTravelStyle, "extravagant"))
}

func TestForm_DefaultTravelStyle(t *testing.T) {
	f := New()
	assert.Equal(t, models.StyleBalanced, f.Draft().TravelStyle)
}

func TestForm_ToggleInterest(t *testing.T) {
	f := New()

	f.ToggleInterest("Food")
	f.ToggleInterest("Culture")
	assert.True(t, f.HasInterest("Food"))
	assert.True(t, f.HasInterest("Culture"))
	assert.Equal(t, []string{"Food", "Culture"}, f.Draft().Interests)

	// Two toggles of the same interest cancel out.
	f.ToggleInterest("Food")
	assert.False(t, f.HasInterest("Food"))
	assert.Equal(t, []string{"Culture"}, f.Draft().Interests)

	f.ToggleInterest("Food")
	assert.True(t, f.HasInterest("Food"))
}

func TestForm_ToggleInterest_DoubleToggleRestoresSet(t *testing.T) {
	interests := []string{"Food", "Culture", "Art", "Nature"}

	f := New()
	f.ToggleInterest("Food")
	f.ToggleInterest("Culture")
	before := f.Draft().Interests

	for _, interest := range interests {
		f.ToggleInterest(interest)
		f.ToggleInterest(interest)
		assert.Equal(t, before, f.Draft().Interests, "toggling %q twice must be a no-op", interest)
	}
}

// ==========================
// Validation
// ==========================

func TestForm_ValidateForSubmission(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(f *Form)
		expectFields  []string
		expectSuccess bool
	}{
		{
			name:          "complete draft",
			mutate:        func(f *Form) {},
			expectSuccess: true,
		},
		{
			name: "missing destination",
			mutate: func(f *Form) {
				_ = f.SetField(FieldDestination, "")
			},
			expectFields: []string{FieldDestination},
		},
		{
			name: "missing start date",
			mutate: func(f *Form) {
				_ = f.SetField(FieldStartDate, "  ")
			},
			expectFields: []string{FieldStartDate},
		},
		{
			name: "non-numeric budget",
			mutate: func(f *Form) {
				_ = f.SetField(FieldBudget, "a lot")
			},
			expectFields: []string{FieldBudget},
		},
		{
			name: "non-numeric duration",
			mutate: func(f *Form) {
				_ = f.SetField(FieldDurationDays, "one week")
			},
			expectFields: []string{FieldDurationDays},
		},
		{
			name: "zero budget",
			mutate: func(f *Form) {
				_ = f.SetField(FieldBudget, "0")
			},
			expectFields: []string{FieldBudget},
		},
		{
			name: "negative duration",
			mutate: func(f *Form) {
				_ = f.SetField(FieldDurationDays, "-3")
			},
			expectFields: []string{FieldDurationDays},
		},
		{
			name: "everything missing",
			mutate: func(f *Form) {
				f.Reset()
			},
			expectFields: []string{FieldDestination, FieldBudget, FieldDurationDays, FieldStartDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			fillValidDraft(t, f)
			tt.mutate(f)

			err := f.ValidateForSubmission()
			if tt.expectSuccess {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
			assert.True(t, errors.IsUserVisible(err))
			assert.ElementsMatch(t, tt.expectFields, fieldNames(err))
		})
	}
}

// ==========================
// Payload Coercion
// ==========================

func TestForm_ToRequestPayload(t *testing.T) {
	f := New()
	fillValidDraft(t, f)
	f.ToggleInterest("Food")
	f.ToggleInterest("Culture")

	payload, err := f.ToRequestPayload()
	require.NoError(t, err)

	assert.Equal(t, "Tokyo", payload.Destination)
	assert.Equal(t, 3000, payload.Budget)
	assert.Equal(t, 7, payload.DurationDays)
	assert.Equal(t, "2025-09-10", payload.StartDate)
	assert.Equal(t, []string{"Food", "Culture"}, payload.Interests)
	assert.Equal(t, "balanced", payload.TravelStyle)
}

func TestForm_ToRequestPayload_CoercionFailureIsValidation(t *testing.T) {
	f := New()
	fillValidDraft(t, f)
	require.NoError(t, f.SetField(FieldBudget, "30OO"))

	payload, err := f.ToRequestPayload()
	assert.Nil(t, payload)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.ElementsMatch(t, []string{FieldBudget}, fieldNames(err))
}

// ==========================
// Reset
// ==========================

func TestForm_Reset(t *testing.T) {
	f := New()
	fillValidDraft(t, f)
	f.ToggleInterest("Food")
	require.NoError(t, f.SetField(FieldTravelStyle, "adventure"))

	f.Reset()

	draft := f.Draft()
	assert.Empty(t, draft.Destination)
	assert.Empty(t, draft.Budget)
	assert.Empty(t, draft.DurationDays)
	assert.Empty(t, draft.StartDate)
	assert.Empty(t, draft.Interests)
	assert.Equal(t, models.StyleBalanced, draft.TravelStyle)
}

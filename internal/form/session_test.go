package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStep2Draft() *Draft {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	end := time.Date(2024, 6, 10, 18, 0, 0, 0, time.Local)
	return &Draft{
		Name:            "Taller",
		EventModality:   "presencial",
		MaxParticipants: "50",
		PriceEvent:      "100000",
		StartTime:       &start,
		EndTime:         &end,
	}
}

func TestSession_NextStep_BlockedOnMissingName(t *testing.T) {
	s := NewSession("user-1", nil)

	err := s.NextStep()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "nombre del evento")
	assert.Equal(t, 1, s.Step())
}

func TestSession_NextStep_AdvancesOneAtATime(t *testing.T) {
	s := NewSession("user-1", nil)
	s.Set(FieldName, "Taller")

	require.NoError(t, s.NextStep())
	assert.Equal(t, 2, s.Step())

	// Step 2 incomplete: stays.
	require.Error(t, s.NextStep())
	assert.Equal(t, 2, s.Step())
}

func TestSession_PrevStep_FloorsAtOne(t *testing.T) {
	s := NewSession("user-1", nil)

	s.PrevStep()
	assert.Equal(t, 1, s.Step())

	s.Set(FieldName, "Taller")
	require.NoError(t, s.NextStep())
	s.PrevStep()
	assert.Equal(t, 1, s.Step())
}

func TestSession_NextStep_CapsAtLastStep(t *testing.T) {
	s := NewEditSession(*validStep2Draft(), nil)
	s.Set(FieldLocationName, "Sala A")
	s.Set(FieldLocationAddress, "Calle 1")

	require.NoError(t, s.NextStep())
	require.NoError(t, s.NextStep())
	assert.Equal(t, 3, s.Step())

	// Step 3 is valid; the step never goes past the last one.
	require.NoError(t, s.NextStep())
	assert.Equal(t, 3, s.Step())
}

func TestSession_Set_OverwritesWithoutValidating(t *testing.T) {
	s := NewSession("user-1", nil)

	s.Set(FieldMaxParticipants, "not a number")
	assert.Equal(t, "not a number", s.Draft().MaxParticipants)

	s.Set(FieldMaxParticipants, "50")
	assert.Equal(t, "50", s.Draft().MaxParticipants)
}

func TestSession_MergeDate_PreservesTimeOnDateChange(t *testing.T) {
	s := NewSession("user-1", nil)
	start := time.Date(2024, 6, 10, 9, 41, 0, 0, time.Local)
	s.Draft().StartTime = &start

	picked := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	s.MergeDate(PickerStartDate, &picked)

	got := *s.Draft().StartTime
	assert.Equal(t, time.Date(2024, 6, 15, 9, 41, 0, 0, time.Local), got)
}

func TestSession_MergeDate_PreservesDateOnTimeChange(t *testing.T) {
	s := NewSession("user-1", nil)
	start := time.Date(2024, 6, 10, 9, 41, 0, 0, time.Local)
	s.Draft().StartTime = &start

	picked := time.Date(0, 1, 1, 14, 0, 0, 0, time.Local)
	s.MergeDate(PickerStartTime, &picked)

	got := *s.Draft().StartTime
	assert.Equal(t, time.Date(2024, 6, 10, 14, 0, 0, 0, time.Local), got)
}

func TestSession_MergeDate_FirstPickSetsValue(t *testing.T) {
	s := NewSession("user-1", nil)

	picked := time.Date(2024, 6, 15, 10, 30, 0, 0, time.Local)
	s.MergeDate(PickerEndDate, &picked)

	require.NotNil(t, s.Draft().EndTime)
	assert.Equal(t, picked, *s.Draft().EndTime)
}

func TestSession_MergeDate_CancelledPickOnlyClosesPicker(t *testing.T) {
	s := NewSession("user-1", nil)
	start := time.Date(2024, 6, 10, 9, 41, 0, 0, time.Local)
	s.Draft().StartTime = &start

	s.OpenPicker(PickerStartDate)
	require.True(t, s.PickerOpen(PickerStartDate))

	s.MergeDate(PickerStartDate, nil)

	assert.False(t, s.PickerOpen(PickerStartDate))
	assert.Equal(t, start, *s.Draft().StartTime)
}

func TestValidateStep2_EndMustBeAfterStart(t *testing.T) {
	d := validStep2Draft()
	*d.EndTime = d.StartTime.Add(-time.Hour)

	err := ValidateStep(2, d)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "fecha de finalización")

	// Equal timestamps fail too; the comparison is strict.
	*d.EndTime = *d.StartTime
	err = ValidateStep(2, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fecha de finalización")
}

func TestValidateStep2_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		wantMsg string
	}{
		{"missing modality", func(d *Draft) { d.EventModality = "" }, "modalidad"},
		{"unknown modality", func(d *Draft) { d.EventModality = "remota" }, "no es válida"},
		{"virtual needs link", func(d *Draft) { d.EventModality = "virtual"; d.VideoConferenceLink = "" }, "videoconferencia"},
		{"missing max participants", func(d *Draft) { d.MaxParticipants = "" }, "máximo de participantes"},
		{"non-numeric max participants", func(d *Draft) { d.MaxParticipants = "abc" }, "entero positivo"},
		{"zero max participants", func(d *Draft) { d.MaxParticipants = "0" }, "entero positivo"},
		{"missing price", func(d *Draft) { d.PriceEvent = "" }, "precio del evento"},
		{"negative price", func(d *Draft) { d.PriceEvent = "-5" }, "número válido"},
		{"missing start", func(d *Draft) { d.StartTime = nil }, "fecha de inicio"},
		{"missing end", func(d *Draft) { d.EndTime = nil }, "fecha de finalización"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validStep2Draft()
			tt.mutate(d)

			err := ValidateStep(2, d)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateStep2_HibridoNeedsLink(t *testing.T) {
	d := validStep2Draft()
	d.EventModality = "hibrido"
	d.VideoConferenceLink = ""
	require.Error(t, ValidateStep(2, d))

	d.VideoConferenceLink = "https://meet.example.com/taller"
	require.NoError(t, ValidateStep(2, d))
}

func TestValidateStep3_LocationFields(t *testing.T) {
	d := &Draft{}
	err := ValidateStep(3, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nombre del lugar")

	d.LocationName = "Sala A"
	err = ValidateStep(3, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirección")

	d.LocationAddress = "Calle 1"
	require.NoError(t, ValidateStep(3, d))
}

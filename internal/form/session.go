package form

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/eventosia/client/internal/models"
)

// Field names an editable draft field for Set. The names match the wire
// fields so step renderers can stay table-driven.
type Field string

const (
	FieldName                Field = "name"
	FieldDescription         Field = "description"
	FieldModality            Field = "event_modality"
	FieldVideoLink           Field = "video_conference_link"
	FieldMaxParticipants     Field = "max_participants"
	FieldPrice               Field = "price_event"
	FieldLocationName        Field = "location_name"
	FieldLocationAddress     Field = "location_address"
	FieldLocationDescription Field = "location_description"
	FieldLocationRentalPrice Field = "location_rental_price"
)

// PickerKind identifies which half of which timestamp a date/time picker edits.
type PickerKind string

const (
	PickerStartDate PickerKind = "startDate"
	PickerStartTime PickerKind = "startTime"
	PickerEndDate   PickerKind = "endDate"
	PickerEndTime   PickerKind = "endTime"
)

// Session is the single source of truth for one in-progress draft: the field
// values, the current step, and the transient picker flags. It is owned by
// the screen that created it and discarded on cancel or successful submit.
// All mutation is synchronous and in-memory; nothing persists before Submit.
type Session struct {
	draft   Draft
	step    int
	pickers map[PickerKind]bool
	logger  *zap.Logger
}

// NewSession starts a fresh draft at step 1 for the given creator.
func NewSession(userID string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		draft:   Draft{UserIDCreatedBy: userID},
		step:    1,
		pickers: make(map[PickerKind]bool),
		logger:  logger,
	}
}

// NewEditSession starts a session pre-filled from an existing event, at step 1.
func NewEditSession(draft Draft, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		draft:   draft,
		step:    1,
		pickers: make(map[PickerKind]bool),
		logger:  logger,
	}
}

// Draft exposes the working draft for rendering.
func (s *Session) Draft() *Draft { return &s.draft }

// Step returns the current step, 1-based.
func (s *Session) Step() int { return s.step }

// Set overwrites one field with raw input. No validation happens at write
// time; steps gate on validation only when advancing.
func (s *Session) Set(field Field, value string) {
	switch field {
	case FieldName:
		s.draft.Name = value
	case FieldDescription:
		s.draft.Description = value
	case FieldModality:
		s.draft.EventModality = models.Modality(value)
	case FieldVideoLink:
		s.draft.VideoConferenceLink = value
	case FieldMaxParticipants:
		s.draft.MaxParticipants = value
	case FieldPrice:
		s.draft.PriceEvent = value
	case FieldLocationName:
		s.draft.LocationName = value
	case FieldLocationAddress:
		s.draft.LocationAddress = value
	case FieldLocationDescription:
		s.draft.LocationDescription = value
	case FieldLocationRentalPrice:
		s.draft.LocationRentalPrice = value
	default:
		s.logger.Warn("set on unknown field", zap.String("field", string(field)))
	}
}

// AttachImage sets the event image picked by the user; nil clears it.
func (s *Session) AttachImage(img *models.ImageAsset) {
	s.draft.Image = img
}

// OpenPicker marks a date/time picker as visible.
func (s *Session) OpenPicker(kind PickerKind) {
	s.pickers[kind] = true
}

// PickerOpen reports whether a picker is currently visible.
func (s *Session) PickerOpen(kind PickerKind) bool {
	return s.pickers[kind]
}

// MergeDate folds a picked date or time into the draft's start or end
// timestamp, preserving the half the picker did not edit, and closes the
// picker. A nil pick means the user cancelled: the picker closes and the
// draft is untouched.
func (s *Session) MergeDate(kind PickerKind, picked *time.Time) {
	s.pickers[kind] = false
	if picked == nil {
		return
	}
	switch kind {
	case PickerStartDate:
		s.draft.StartTime = mergeDatePart(s.draft.StartTime, *picked)
	case PickerStartTime:
		s.draft.StartTime = mergeTimePart(s.draft.StartTime, *picked)
	case PickerEndDate:
		s.draft.EndTime = mergeDatePart(s.draft.EndTime, *picked)
	case PickerEndTime:
		s.draft.EndTime = mergeTimePart(s.draft.EndTime, *picked)
	}
}

// mergeDatePart replaces the calendar date, keeping the existing clock time.
func mergeDatePart(existing *time.Time, picked time.Time) *time.Time {
	if existing == nil {
		t := picked
		return &t
	}
	y, m, d := picked.Date()
	hh, mm, ss := existing.Clock()
	t := time.Date(y, m, d, hh, mm, ss, 0, existing.Location())
	return &t
}

// mergeTimePart replaces the clock time, keeping the existing calendar date.
func mergeTimePart(existing *time.Time, picked time.Time) *time.Time {
	if existing == nil {
		t := picked
		return &t
	}
	y, m, d := existing.Date()
	hh, mm, ss := picked.Clock()
	t := time.Date(y, m, d, hh, mm, ss, 0, existing.Location())
	return &t
}

// NextStep validates the current step and advances on success. On failure the
// step stays put and the validation error is returned for the screen to
// surface. The last step never advances past StepCount.
func (s *Session) NextStep() error {
	if err := ValidateStep(s.step, &s.draft); err != nil {
		s.logger.Debug("step blocked", zap.Int("step", s.step), zap.Error(err))
		return err
	}
	if s.step < StepCount {
		s.step++
	}
	return nil
}

// PrevStep moves back one step without re-validating the step being left.
// Step 1 is the floor.
func (s *Session) PrevStep() {
	if s.step > 1 {
		s.step--
	}
}

// Submit runs the full submission sequence for the draft. On success the
// session's draft is superseded by the returned persisted event and the
// caller navigates to confirmation.
func (s *Session) Submit(ctx context.Context, sub *Submitter) (*models.Event, error) {
	return sub.Submit(ctx, &s.draft)
}

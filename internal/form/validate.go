package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks a locally detected validation failure. Wrapped errors
// carry the user-facing message; these never reach the network layer.
var ErrValidation = errors.New("validation")

var (
	errInvalidMaxParticipants = fmt.Errorf("%w: el máximo de participantes debe ser un número entero positivo", ErrValidation)
	errInvalidPrice           = fmt.Errorf("%w: el precio del evento debe ser un número válido", ErrValidation)
	errInvalidRentalPrice     = fmt.Errorf("%w: el precio de alquiler debe ser un número válido", ErrValidation)
)

var validate = validator.New()

// StepCount is the number of form steps.
const StepCount = 3

// ValidateStep checks the fields a step gates on. A nil return means the step
// may advance. The returned error message names the offending field, in the
// user's language, ready to surface as a blocking alert.
func ValidateStep(step int, d *Draft) error {
	switch step {
	case 1:
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("%w: el nombre del evento es obligatorio", ErrValidation)
		}
	case 2:
		if d.EventModality == "" {
			return fmt.Errorf("%w: debes seleccionar la modalidad del evento", ErrValidation)
		}
		if !d.EventModality.Valid() {
			return fmt.Errorf("%w: la modalidad %q no es válida", ErrValidation, d.EventModality)
		}
		if d.EventModality.RequiresVideoLink() && strings.TrimSpace(d.VideoConferenceLink) == "" {
			return fmt.Errorf("%w: el enlace de videoconferencia es obligatorio para eventos no presenciales", ErrValidation)
		}
		if strings.TrimSpace(d.MaxParticipants) == "" {
			return fmt.Errorf("%w: el máximo de participantes es obligatorio", ErrValidation)
		}
		if _, err := d.maxParticipants(); err != nil {
			return err
		}
		if strings.TrimSpace(d.PriceEvent) == "" {
			return fmt.Errorf("%w: el precio del evento es obligatorio", ErrValidation)
		}
		if _, err := d.priceEvent(); err != nil {
			return err
		}
		if d.StartTime == nil {
			return fmt.Errorf("%w: debes seleccionar la fecha de inicio", ErrValidation)
		}
		if d.EndTime == nil {
			return fmt.Errorf("%w: debes seleccionar la fecha de finalización", ErrValidation)
		}
		if !d.EndTime.After(*d.StartTime) {
			return fmt.Errorf("%w: la fecha de finalización debe ser posterior a la fecha de inicio", ErrValidation)
		}
	case 3:
		if strings.TrimSpace(d.LocationName) == "" {
			return fmt.Errorf("%w: el nombre del lugar es obligatorio", ErrValidation)
		}
		if strings.TrimSpace(d.LocationAddress) == "" {
			return fmt.Errorf("%w: la dirección del lugar es obligatoria", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: paso desconocido %d", ErrValidation, step)
	}
	return nil
}

// finalFieldMessages maps struct fields re-checked before submission to their
// user-facing messages.
var finalFieldMessages = map[string]string{
	"Name":            "el nombre del evento es obligatorio",
	"LocationName":    "el nombre del lugar es obligatorio",
	"LocationAddress": "la dirección del lugar es obligatoria",
	"StartTime":       "debes seleccionar la fecha de inicio",
	"EndTime":         "debes seleccionar la fecha de finalización",
}

// validateFinal re-checks the mandatory fields right before submission, after
// the user may have navigated back and cleared something a step had approved.
func validateFinal(d *Draft) error {
	err := validate.StructPartial(d, "Name", "LocationName", "LocationAddress", "StartTime", "EndTime")
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := finalFieldMessages[verrs[0].StructField()]; ok {
			return fmt.Errorf("%w: %s", ErrValidation, msg)
		}
		return fmt.Errorf("%w: el campo %s no es válido", ErrValidation, verrs[0].StructField())
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eventosia/client/internal/api"
	"github.com/eventosia/client/internal/form"
	"github.com/eventosia/client/internal/models"
)

// stepPrompt is one input line of the wizard: which draft field it writes and
// how it is labeled. The wizard renders fields and forwards raw input; all
// validation happens centrally when the step advances.
type stepPrompt struct {
	field form.Field
	label string
}

var stepPrompts = map[int][]stepPrompt{
	1: {
		{form.FieldName, "Nombre del evento"},
		{form.FieldDescription, "Descripción"},
	},
	2: {
		{form.FieldModality, "Modalidad (virtual/presencial/hibrido)"},
		{form.FieldVideoLink, "Enlace de videoconferencia (si no es presencial)"},
		{form.FieldMaxParticipants, "Máximo de participantes"},
		{form.FieldPrice, "Precio del evento"},
	},
	3: {
		{form.FieldLocationName, "Nombre del lugar"},
		{form.FieldLocationAddress, "Dirección"},
		{form.FieldLocationDescription, "Descripción del lugar"},
		{form.FieldLocationRentalPrice, "Precio de alquiler"},
	},
}

func newEventsCreateCmd(getApp func() *app) *cobra.Command {
	var imagePath string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crea un evento paso a paso",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.requireLogin(); err != nil {
				return err
			}
			user, err := a.session.CurrentUser()
			if err != nil {
				return err
			}

			sess := form.NewSession(user.ID.String(), a.logger)
			if imagePath != "" {
				sess.AttachImage(&models.ImageAsset{Path: imagePath})
			}

			reader := bufio.NewReader(os.Stdin)
			for sess.Step() <= form.StepCount {
				step := sess.Step()
				fmt.Printf("\n— Paso %d de %d —\n", step, form.StepCount)
				renderStep(sess, reader)
				if step == 2 {
					renderSchedule(sess, reader)
				}

				if err := sess.NextStep(); err != nil {
					fmt.Println(userMessage(err))
					continue // same step, re-prompt
				}
				if step == form.StepCount {
					break
				}
			}

			fmt.Print("\n¿Crear el evento? (s/n): ")
			answer, _ := reader.ReadString('\n')
			if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "s") {
				fmt.Println("Creación cancelada.")
				return nil
			}

			submitter := form.NewSubmitter(a.client, a.logger)
			event, err := sess.Submit(cmd.Context(), submitter)
			if err != nil {
				return fmt.Errorf("no se pudo crear el evento: %s", userMessage(err))
			}
			fmt.Printf("\n¡Evento creado! ID: %s\n", event.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "ruta a la imagen del evento")
	return cmd
}

// renderStep prompts the fields of the current step. Blank input keeps the
// current value, so re-running a step after a validation failure only asks
// for what the user wants to change.
func renderStep(sess *form.Session, reader *bufio.Reader) {
	for _, p := range stepPrompts[sess.Step()] {
		fmt.Printf("%s: ", p.label)
		line, _ := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			sess.Set(p.field, line)
		}
	}
}

// renderSchedule prompts the four date/time pickers of step 2.
func renderSchedule(sess *form.Session, reader *bufio.Reader) {
	prompts := []struct {
		kind   form.PickerKind
		label  string
		layout string
	}{
		{form.PickerStartDate, "Fecha de inicio (2006-01-02)", "2006-01-02"},
		{form.PickerStartTime, "Hora de inicio (15:04)", "15:04"},
		{form.PickerEndDate, "Fecha de finalización (2006-01-02)", "2006-01-02"},
		{form.PickerEndTime, "Hora de finalización (15:04)", "15:04"},
	}
	for _, p := range prompts {
		sess.OpenPicker(p.kind)
		fmt.Printf("%s: ", p.label)
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			sess.MergeDate(p.kind, nil) // cancelled pick, keep current value
			continue
		}
		t, err := time.ParseInLocation(p.layout, line, time.Local)
		if err != nil {
			fmt.Println("Formato no válido, se mantiene el valor anterior.")
			sess.MergeDate(p.kind, nil)
			continue
		}
		sess.MergeDate(p.kind, &t)
	}
}

// userMessage strips the validation sentinel prefix and falls back to the
// API error text for everything else.
func userMessage(err error) string {
	msg := api.ErrorMessage(err)
	return strings.TrimPrefix(msg, form.ErrValidation.Error()+": ")
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eventosia/client/internal/api"
	"github.com/eventosia/client/internal/models"
	"github.com/eventosia/client/internal/reports"
)

func newEventsCmd(getApp func() *app) *cobra.Command {
	events := &cobra.Command{
		Use:   "events",
		Short: "Gestiona tus eventos",
	}
	events.AddCommand(newEventsListCmd(getApp))
	events.AddCommand(newEventsCreateCmd(getApp))
	events.AddCommand(newEventsDeleteCmd(getApp))
	events.AddCommand(newEventsExportCmd(getApp))
	return events
}

func newEventsListCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista tus eventos",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.requireLogin(); err != nil {
				return err
			}
			list, err := a.state.Events.FetchAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("no se pudieron cargar los eventos: %s", api.ErrorMessage(err))
			}
			if len(list) == 0 {
				fmt.Println("No tienes eventos todavía.")
				return nil
			}
			for _, e := range list {
				fmt.Printf("%-10s  %-30s  estado=%s\n", e.ID, e.Name, e.EventStateID)
			}
			return nil
		},
	}
}

func newEventsDeleteCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina un evento",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.requireLogin(); err != nil {
				return err
			}
			id := models.ID(args[0])
			if err := a.state.Events.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("no se pudo eliminar el evento: %s", api.ErrorMessage(err))
			}
			fmt.Println("Evento eliminado.")
			return nil
		},
	}
}

func newEventsExportCmd(getApp func() *app) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export <id> {participants|invoice}",
		Short: "Exporta la lista de participantes (xlsx) o la factura (pdf) de un evento",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			if err := a.requireLogin(); err != nil {
				return err
			}
			eventID := models.ID(args[0])
			event, err := a.state.Events.FetchOne(cmd.Context(), eventID)
			if err != nil {
				return fmt.Errorf("no se pudo cargar el evento: %s", api.ErrorMessage(err))
			}

			exporter := reports.NewExporter()
			var data []byte
			var filename string

			switch args[1] {
			case "participants":
				participants, err := a.state.Participants.WithFilter(api.ByEvent(eventID)).FetchAll(cmd.Context())
				if err != nil {
					return fmt.Errorf("no se pudieron cargar los participantes: %s", api.ErrorMessage(err))
				}
				data, filename, err = exporter.ParticipantsExcel(&event, participants)
				if err != nil {
					return err
				}
			case "invoice":
				invoice, err := a.client.GetEventInvoice(cmd.Context(), eventID)
				if err != nil {
					return fmt.Errorf("no se pudo cargar la factura: %s", api.ErrorMessage(err))
				}
				data, filename, err = exporter.InvoicePDF(&event, invoice)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("formato desconocido %q: usa participants o invoice", args[1])
			}

			path := filepath.Join(outDir, filename)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("guardar archivo: %w", err)
			}
			fmt.Printf("Exportado a %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directorio de salida")
	return cmd
}

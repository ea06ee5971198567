// Package reports renders event data into files the user can share:
// participant rosters as spreadsheets and billing invoices as PDFs.
package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/eventosia/client/internal/models"
)

// Exporter renders report files from already-fetched data.
type Exporter interface {
	ParticipantsExcel(event *models.Event, participants []models.Participant) ([]byte, string, error)
	InvoicePDF(event *models.Event, invoice *models.Invoice) ([]byte, string, error)
}

type exporter struct{}

// NewExporter creates the default exporter.
func NewExporter() Exporter {
	return &exporter{}
}

// ParticipantsExcel writes the participant roster of one event as .xlsx.
// Returns the file bytes and a suggested filename.
func (e *exporter) ParticipantsExcel(event *models.Event, participants []models.Participant) ([]byte, string, error) {
	f := excelize.NewFile()
	sheet := "Participantes"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Nombre", "Email", "Teléfono", "Confirmado", "Registrado"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	for i, p := range participants {
		row := i + 2
		confirmed := "No"
		if p.Confirmed {
			confirmed = "Sí"
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.ID.String())
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), confirmed)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.CreatedAt.Format("2006-01-02 15:04"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("participantes_%s_%s.xlsx", event.ID, time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

// InvoicePDF writes the billing summary of one event as PDF.
func (e *exporter) InvoicePDF(event *models.Event, invoice *models.Invoice) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Factura del evento")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(40, 8, fmt.Sprintf("Evento: %s", event.Name))
	pdf.Ln(6)
	if invoice.ClientName != "" {
		pdf.Cell(40, 8, fmt.Sprintf("Cliente: %s", invoice.ClientName))
		pdf.Ln(6)
	}
	pdf.Cell(40, 8, fmt.Sprintf("Emitida: %s", invoice.IssuedAt.Format("2006-01-02")))
	pdf.Ln(10)

	headers := []string{"Descripción", "Cantidad", "Precio unitario", "Total"}
	widths := []float64{90, 25, 35, 35}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range invoice.Items {
		pdf.CellFormat(widths[0], 6, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.2f", item.TotalCost()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.2f", invoice.Total()), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("factura_%s.pdf", event.ID)
	return buf.Bytes(), filename, nil
}

package report

import (
	"bytes"
	"fmt"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

// HistoryPDF renders a patient's visit history, one block per record.
func HistoryPDF(patient *entity.Patient, records []*entity.HistoryRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Medical History", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s (%d, %s)", patient.Name, patient.Age, patient.Gender), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(records) == 0 {
		pdf.CellFormat(0, 10, "No history recorded.", "", 1, "", false, 0, "")
	}

	for _, r := range records {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 10, fmt.Sprintf("%s - %s (%s)", r.AppointmentDate, r.DoctorName, r.Specialization), "1", 1, "", false, 0, "")
		addDetail(pdf, "Status", string(r.Status))
		addDetail(pdf, "Tests", orDash(r.Tests))
		addDetail(pdf, "Medicine", orDash(r.MedicineName))
		addDetail(pdf, "Instructions", orDash(r.Instructions))
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(35, 8, label, "1", 0, "", false, 0, "")
	pdf.MultiCell(0, 8, value, "1", "", false)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

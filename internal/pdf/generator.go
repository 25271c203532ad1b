package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/trucklink/orderfile/internal/model"
)

// Generator renders the one-page summary sheet delivered next to an order
// file.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(order model.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Transportopdracht", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Rit %s - Container %s", order.TripReference, order.Container.Number), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Container", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	addRow(pdf, "Type", order.Container.TypeLabel)
	addRow(pdf, "Zegel", order.Container.SealNumber)
	addRow(pdf, "Brutogewicht", order.Container.GrossWeight)
	addRow(pdf, "Lading", order.Container.Cargo)
	addRow(pdf, "ADR", order.Container.Hazardous)
	if order.Container.Temperature != "" {
		addRow(pdf, "Temperatuur", order.Container.Temperature+" C")
	}
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Vaart", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	addRow(pdf, "Zeeschip", order.VesselName)
	addRow(pdf, "Rederij", order.Carrier)
	addRow(pdf, "Datum", order.Date)
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Route", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, loc := range order.Locations {
		line := fmt.Sprintf("%s: %s", loc.Action, loc.Name)
		if loc.City != "" {
			line += ", " + loc.City
		}
		if loc.TimeFrom != "" && loc.TimeTo != "" {
			line += fmt.Sprintf(" (%s - %s)", loc.TimeFrom, loc.TimeTo)
		}
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addRow(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

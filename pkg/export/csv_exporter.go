package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// SlotRow is one bookable slot line in an exported sheet.
type SlotRow struct {
	ID        string
	StartTime string
	Label     string
	Available bool
}

// SlotSheet is the tabular form of one day's slot grid. Date is the ISO
// calendar date; Timezone names the zone the labels were rendered in.
type SlotSheet struct {
	Date     string
	Timezone string
	Rows     []SlotRow
}

// sheetColumns is the fixed column contract shared by every renderer.
var sheetColumns = []string{"Slot", "Starts", "Label", "Available"}

func (r SlotRow) availability() string {
	if r.Available {
		return "yes"
	}
	return "no"
}

// CSVExporter renders slot sheets into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces the CSV form of the sheet, one line per slot.
func (e *CSVExporter) Render(sheet SlotSheet) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(sheetColumns); err != nil {
		return nil, fmt.Errorf("write slot sheet header: %w", err)
	}
	for _, row := range sheet.Rows {
		record := []string{row.ID, row.StartTime, row.Label, row.availability()}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write slot row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush slot sheet: %w", err)
	}
	return buf.Bytes(), nil
}

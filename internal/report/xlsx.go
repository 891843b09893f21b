package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	sessionsSheet = "Sessions"
	timeLayout    = "2006-01-02 15:04:05"
)

var sessionHeader = []interface{}{
	"ID", "Plate", "Type", "Entry", "Exit", "Monthly", "Cost", "Entry operator", "Exit operator",
}

// WriteXLSX renders the report as a workbook with a summary sheet and one
// row per session.
func WriteXLSX(w io.Writer, d *Daily, loc *time.Location) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Date", d.Date},
		{"Vehicles entered", d.Entered},
		{"Earnings", d.Earnings},
		{"Still inside", d.StillOpen},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if _, err := f.NewSheet(sessionsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.SetSheetRow(sessionsSheet, "A1", &sessionHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, s := range d.Sessions {
		exit, exitOperator := "", ""
		if s.ExitTime != nil {
			exit = s.ExitTime.In(loc).Format(timeLayout)
		}
		if s.ExitOperatorName != nil {
			exitOperator = *s.ExitOperatorName
		}

		row := []interface{}{
			s.ID,
			s.Plate,
			string(s.VehicleType),
			s.EntryTime.In(loc).Format(timeLayout),
			exit,
			s.IsMonthly,
			s.TotalCost,
			s.OperatorName,
			exitOperator,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sessionsSheet, cell, &row); err != nil {
			return fmt.Errorf("write session %d: %w", s.ID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

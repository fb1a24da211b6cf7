package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Pending SO"

var exportHeader = []interface{}{
	"Date Created", "Company Name", "Contact Person", "SO Number", "SO Amount", "Status", "Remarks",
}

// WriteXLSX writes rows, already filtered and sorted, as a single-sheet
// workbook. Numeric amounts are stored as numbers.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		d := Display(r)
		var amount interface{} = string(r.SOAmount)
		if r.SOAmount.Numeric() {
			amount = r.SOAmount.Value().InexactFloat64()
		}
		cells := []interface{}{
			d.DateCreated, d.CompanyName, d.ContactPerson, d.SONumber, amount, d.Status, d.Remarks,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r.ID, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "G", 22); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/employee"
)

// SheetName は書き出すワークシート名です。
const SheetName = "Employees"

const timestampLayout = "2006-01-02 15:04:05"

var xlsxHeader = []interface{}{"ID", "Full Name", "Gender", "Date of Birth", "State", "Status", "Created At", "Updated At"}

// WriteXLSX は社員一覧を .xlsx ワークブックとして書き出します。
func WriteXLSX(w io.Writer, employees []*employee.Employee) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("report: create header style: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("report: style header: %w", err)
	}

	row := 2
	for _, e := range employees {
		if e == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("report: cell name: %w", err)
		}
		values := []interface{}{
			e.ID,
			e.FullName,
			string(e.Gender),
			e.DateOfBirth,
			e.State,
			StatusLabel(e.IsActive),
			e.CreatedAt.UTC().Format(timestampLayout),
			e.UpdatedAt.UTC().Format(timestampLayout),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("report: write row %s: %w", e.ID, err)
		}
		row++
	}

	if err := f.SetColWidth(SheetName, "A", "A", 44); err != nil {
		return fmt.Errorf("report: column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "H", 20); err != nil {
		return fmt.Errorf("report: column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}
	return nil
}

package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateReportExcel creates an Excel file from the quotes report and
// returns the file contents as a byte slice.
func GenerateReportExcel(data ReportExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Orçamentos"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through E).
	columns := []string{"A", "B", "C", "D", "E"}
	widths := []float64{10, 40, 14, 14, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	currencyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 4, // #,##0.00
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create currency style: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create bold style: %w", err)
	}

	// ── Title and period ────────────────────────────────────────────────

	f.SetCellValue(sheetName, "A1", "Relatório de Orçamentos")
	f.SetCellStyle(sheetName, "A1", "E1", titleStyle)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Período: %s a %s", data.PeriodStart, data.PeriodEnd))

	// ── Table header ────────────────────────────────────────────────────

	headerRow := 4
	headers := []string{"Nº", "Cliente", "Status", "Data", "Total (R$)"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s%d", columns[i], headerRow)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName,
		fmt.Sprintf("A%d", headerRow),
		fmt.Sprintf("E%d", headerRow),
		headerStyle)

	// ── Rows ────────────────────────────────────────────────────────────

	rowNum := headerRow
	for _, r := range data.Rows {
		rowNum++
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), r.QuoteNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r.CustomerName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), r.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), r.CreatedDate)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), r.Total)
		f.SetCellStyle(sheetName, fmt.Sprintf("E%d", rowNum), fmt.Sprintf("E%d", rowNum), currencyStyle)
	}

	// ── Summary ─────────────────────────────────────────────────────────

	rowNum += 2
	summary := []struct {
		label string
		value any
	}{
		{"Volume no período", data.Stats.TotalVolume},
		{"Orçamentos criados", data.Stats.QuoteCount},
		{"Aprovados", data.Stats.ApprovedCount},
		{"Total aprovado", data.Stats.ApprovedTotal},
		{"Conversão (%)", data.Stats.Conversion},
	}
	for _, s := range summary {
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), s.label)
		f.SetCellStyle(sheetName, fmt.Sprintf("B%d", rowNum), fmt.Sprintf("B%d", rowNum), boldStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), s.value)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

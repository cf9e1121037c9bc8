package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateReportExcel(t *testing.T) {
	data := ReportExportData{
		PeriodStart: "2025-09-01",
		PeriodEnd:   "2025-09-30",
		Rows: []ReportRow{
			{QuoteNumber: 1, CustomerName: "Maria Souza", Status: QuoteStatusApproved, CreatedDate: "02/09/2025", Total: 540.00},
			{QuoteNumber: 2, CustomerName: "João Lima", Status: QuoteStatusSent, CreatedDate: "10/09/2025", Total: 300.00},
		},
	}
	data.Stats = CalcReportStats([]QuoteSummary{
		{Total: 540, Status: QuoteStatusApproved},
		{Total: 300, Status: QuoteStatusSent},
	})

	out, err := GenerateReportExcel(data)
	if err != nil {
		t.Fatalf("GenerateReportExcel returned error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("generated workbook is not readable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Orçamentos")
	if err != nil {
		t.Fatalf("could not read sheet: %v", err)
	}
	if len(rows) < 3 {
		t.Errorf("expected title, header and data rows, got %d rows", len(rows))
	}

	var found bool
	for _, row := range rows {
		for _, cell := range row {
			if cell == "Maria Souza" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected customer name in the exported sheet")
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	data := QuoteExportData{
		QuoteNumber:  1,
		Status:       QuoteStatusSent,
		CreatedDate:  "02/09/2025",
		CustomerName: "Maria Souza",
		Items: []QuoteExportItem{
			{Description: "Armário de cozinha", Quantity: 2, UnitPrice: 150.00, Subtotal: 300.00},
			{Description: "Bancada MDF", Quantity: 1, UnitPrice: 300.00, Subtotal: 300.00},
		},
		Subtotal:          600.00,
		Discount:          10,
		DiscountType:      DiscountPercent,
		Total:             540.00,
		PaymentConditions: "50% entrada, 50% na entrega",
	}

	out, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF returned error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty PDF")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("expected output to start with the PDF magic bytes")
	}
}

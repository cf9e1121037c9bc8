package services

// ReportRow is a single quote line in the reports export.
type ReportRow struct {
	QuoteNumber  int
	CustomerName string
	Status       string
	CreatedDate  string // dd/mm/yyyy
	Total        float64
}

// ReportExportData holds everything the Excel report needs.
type ReportExportData struct {
	PeriodStart string
	PeriodEnd   string
	Rows        []ReportRow
	Stats       ReportStats
}

// QuoteExportItem is one line of the quote PDF.
type QuoteExportItem struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Subtotal    float64
}

// QuoteExportData holds everything the proposal PDF needs.
type QuoteExportData struct {
	QuoteNumber       int
	Status            string
	CreatedDate       string
	CustomerName      string
	CustomerPhone     string
	CustomerAddress   string
	Items             []QuoteExportItem
	Subtotal          float64
	Discount          float64
	DiscountType      string
	Total             float64
	PaymentConditions string
}

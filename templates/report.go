package templates

import "github.com/a-h/templ"

// ReportQuoteRow is one quote line of the reports table.
type ReportQuoteRow struct {
	Number       int
	CustomerName string
	Date         string
	Status       string
	Total        float64
}

// ReportData feeds the reports page.
type ReportData struct {
	From          string
	To            string
	Status        string
	Statuses      []string
	Quotes        []ReportQuoteRow
	TotalQuoted   float64
	TotalApproved float64
	Count         int
	ApprovedCount int
	Conversion    float64 // percent
}

func ReportPage(data ReportData, header HeaderData) templ.Component {
	return page("report", header, data)
}

func ReportContent(data ReportData) templ.Component {
	return content("report", data)
}

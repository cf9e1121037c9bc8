package templates

import "github.com/a-h/templ"

// RevenueBar is one month column of the revenue chart.
type RevenueBar struct {
	Label   string
	Revenue float64
	Percent int
}

// DashboardVisit is an upcoming visit shown on the dashboard.
type DashboardVisit struct {
	ID            string
	CustomerName  string
	ScheduledDate string
}

// DashboardQuote is a recent quote shown on the dashboard.
type DashboardQuote struct {
	ID           string
	Number       int
	CustomerName string
	Status       string
	Total        float64
}

// DashboardData feeds the home page.
type DashboardData struct {
	CustomerCount   int
	OpenQuoteCount  int
	ApprovedRevenue float64
	ConversionRate  float64
	ActiveProjects  int
	Revenue         []RevenueBar
	UpcomingVisits  []DashboardVisit
	RecentQuotes    []DashboardQuote
}

func DashboardPage(data DashboardData, header HeaderData) templ.Component {
	return page("dashboard", header, data)
}

func DashboardContent(data DashboardData) templ.Component {
	return content("dashboard", data)
}

package handlers

import (
	"log"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotes, err := app.FindRecordsByFilter("quotes", "1=1", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("dashboard: could not query quotes: %v", err)
			quotes = nil
		}

		summaries := make([]services.QuoteSummary, 0, len(quotes))
		for _, rec := range quotes {
			summaries = append(summaries, services.QuoteSummary{
				Total:      rec.GetFloat("total"),
				Status:     rec.GetString("status"),
				ApprovedAt: rec.GetDateTime("approved_at").Time(),
				Created:    rec.GetDateTime("created").Time(),
			})
		}

		kpis := services.CalcDashboardKPIs(summaries)
		buckets := services.MonthlyRevenue(summaries, time.Now(), 6)

		data := templates.DashboardData{
			ApprovedRevenue: kpis.TotalRevenue,
			ConversionRate:  kpis.ConversionRate,
			Revenue:         revenueBars(buckets),
		}

		for _, rec := range quotes {
			if status := rec.GetString("status"); status == services.QuoteStatusDraft || status == services.QuoteStatusSent {
				data.OpenQuoteCount++
			}
		}

		if col, err := app.FindCollectionByNameOrId("customers"); err == nil {
			if records, err := app.FindAllRecords(col); err == nil {
				data.CustomerCount = len(records)
			}
		}

		if projects, err := app.FindRecordsByFilter(
			"projects", "status = 'in_progress'", "", 0, 0, nil,
		); err == nil {
			data.ActiveProjects = len(projects)
		}

		names := customerNames(app)

		if visits, err := app.FindRecordsByFilter(
			"technical_visits",
			"status = 'Agendada' && scheduled_date >= {:now}",
			"scheduled_date", 5, 0,
			map[string]any{"now": time.Now().UTC().Format("2006-01-02 15:04:05")},
		); err == nil {
			for _, rec := range visits {
				data.UpcomingVisits = append(data.UpcomingVisits, templates.DashboardVisit{
					ID:            rec.Id,
					CustomerName:  names[rec.GetString("customer")],
					ScheduledDate: rec.GetDateTime("scheduled_date").Time().Format("02/01 15:04"),
				})
			}
		}

		for i, rec := range quotes {
			if i >= 5 {
				break
			}
			data.RecentQuotes = append(data.RecentQuotes, templates.DashboardQuote{
				ID:           rec.Id,
				Number:       rec.GetInt("quote_number"),
				CustomerName: names[rec.GetString("customer")],
				Status:       rec.GetString("status"),
				Total:        rec.GetFloat("total"),
			})
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.DashboardContent(data)
		} else {
			component = templates.DashboardPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// revenueBars scales the chart columns against the busiest month.
func revenueBars(buckets []services.MonthBucket) []templates.RevenueBar {
	var max float64
	for _, b := range buckets {
		if b.Revenue > max {
			max = b.Revenue
		}
	}

	bars := make([]templates.RevenueBar, 0, len(buckets))
	for _, b := range buckets {
		percent := 0
		if max > 0 {
			percent = int(b.Revenue / max * 100)
		}
		bars = append(bars, templates.RevenueBar{
			Label:   b.Label,
			Revenue: b.Revenue,
			Percent: percent,
		})
	}
	return bars
}

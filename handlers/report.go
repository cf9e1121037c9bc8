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

func HandleReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		from, to, status := reportFilters(e)

		records := reportQuotes(app, from, to, status)
		names := customerNames(app)

		data := templates.ReportData{
			From:     from,
			To:       to,
			Status:   status,
			Statuses: services.QuoteStatuses,
		}

		var summaries []services.QuoteSummary
		for _, rec := range records {
			summaries = append(summaries, services.QuoteSummary{
				Total:  rec.GetFloat("total"),
				Status: rec.GetString("status"),
			})
			data.Quotes = append(data.Quotes, templates.ReportQuoteRow{
				Number:       rec.GetInt("quote_number"),
				CustomerName: names[rec.GetString("customer")],
				Date:         rec.GetDateTime("created").Time().Format("02/01/2006"),
				Status:       rec.GetString("status"),
				Total:        rec.GetFloat("total"),
			})
		}

		stats := services.CalcReportStats(summaries)
		data.Count = stats.QuoteCount
		data.ApprovedCount = stats.ApprovedCount
		data.TotalQuoted = stats.TotalVolume
		data.TotalApproved = stats.ApprovedTotal
		data.Conversion = stats.Conversion

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ReportContent(data)
		} else {
			component = templates.ReportPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// reportFilters reads the period and status filters, defaulting to the
// current month.
func reportFilters(e *core.RequestEvent) (from, to, status string) {
	from = e.Request.URL.Query().Get("from")
	to = e.Request.URL.Query().Get("to")
	status = e.Request.URL.Query().Get("status")

	now := time.Now()
	if from == "" {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	}
	if to == "" {
		to = now.Format("2006-01-02")
	}
	if !services.ValidQuoteStatus(status) {
		status = ""
	}
	return from, to, status
}

// reportQuotes queries the quotes inside the reporting period. The `to`
// bound is inclusive of the whole day.
func reportQuotes(app *pocketbase.PocketBase, from, to, status string) []*core.Record {
	filter := "created >= {:from} && created <= {:to}"
	params := map[string]any{
		"from": from + " 00:00:00",
		"to":   to + " 23:59:59",
	}
	if status != "" {
		filter += " && status = {:status}"
		params["status"] = status
	}

	records, err := app.FindRecordsByFilter("quotes", filter, "-created", 0, 0, params)
	if err != nil {
		log.Printf("report: could not query quotes: %v", err)
		return nil
	}
	return records
}

package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleOSView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		osID := e.Request.PathValue("id")

		record, err := app.FindRecordById("service_orders", osID)
		if err != nil {
			log.Printf("os_view: could not find service order %s: %v", osID, err)
			SetToast(e, "error", "Ordem de serviço não encontrada")
			return e.Redirect(http.StatusFound, "/finance/os")
		}

		data := osDetailsData(app, record)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.OSDetailsContent(data)
		} else {
			component = templates.OSDetailsPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// osDetailsData assembles the details page for a service order: quote and
// customer context, the status stepper, and the photo grid.
func osDetailsData(app *pocketbase.PocketBase, record *core.Record) templates.OSDetailsData {
	data := templates.OSDetailsData{
		ID:             record.Id,
		OSNumber:       record.GetInt("os_number"),
		QuoteID:        record.GetString("quote"),
		Status:         record.GetString("status"),
		Responsible:    record.GetString("responsible"),
		TechnicalNotes: record.GetString("technical_notes"),
	}
	if d := record.GetDateTime("start_date"); !d.IsZero() {
		data.StartDate = d.Time().Format("2006-01-02")
	}
	if d := record.GetDateTime("end_date"); !d.IsZero() {
		data.EndDate = d.Time().Format("2006-01-02")
	}

	if quote, err := app.FindRecordById("quotes", data.QuoteID); err == nil {
		data.QuoteNumber = quote.GetInt("quote_number")
		if customer, err := app.FindRecordById("customers", quote.GetString("customer")); err == nil {
			data.CustomerName = customer.GetString("name")
			data.CustomerPhone = customer.GetString("phone")
		}
	}

	current := services.OSStatusIndex(data.Status)
	for i, status := range services.OSStatuses {
		data.Steps = append(data.Steps, templates.OSStep{
			Status: status,
			Active: i == current,
			Past:   i < current,
		})
	}

	for i, name := range record.GetStringSlice("photos") {
		data.Photos = append(data.Photos, templates.OSPhoto{
			Index: i,
			URL:   recordFileURL(record, name),
		})
	}
	return data
}

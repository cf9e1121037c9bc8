package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/templates"
)

func HandleOSList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		records, err := app.FindRecordsByFilter(
			"service_orders",
			"1=1",
			"-created",
			0, 0,
			nil,
		)
		if err != nil {
			log.Printf("os_list: could not query service orders: %v", err)
			records = nil
		}

		names := customerNames(app)

		var rows []templates.OSRow
		for _, rec := range records {
			quoteNumber := 0
			customerName := ""
			if quote, err := app.FindRecordById("quotes", rec.GetString("quote")); err == nil {
				quoteNumber = quote.GetInt("quote_number")
				customerName = names[quote.GetString("customer")]
			}
			if searchQuery != "" {
				number := strconv.Itoa(rec.GetInt("os_number"))
				if !strings.Contains(strings.ToLower(customerName), strings.ToLower(searchQuery)) &&
					!strings.Contains(number, searchQuery) {
					continue
				}
			}
			rows = append(rows, templates.OSRow{
				ID:           rec.Id,
				OSNumber:     rec.GetInt("os_number"),
				CustomerName: customerName,
				QuoteNumber:  quoteNumber,
				Status:       rec.GetString("status"),
				Responsible:  rec.GetString("responsible"),
			})
		}

		data := templates.OSListData{
			Orders: rows,
			Search: searchQuery,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.OSListContent(data)
		} else {
			component = templates.OSListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

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

func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		records, err := app.FindRecordsByFilter(
			"quotes",
			"1=1",
			"-created",
			0, 0,
			nil,
		)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			records = nil
		}

		names := customerNames(app)

		var rows []templates.QuoteRow
		for _, rec := range records {
			name := names[rec.GetString("customer")]
			if searchQuery != "" {
				number := strconv.Itoa(rec.GetInt("quote_number"))
				if !strings.Contains(strings.ToLower(name), strings.ToLower(searchQuery)) &&
					!strings.Contains(number, searchQuery) {
					continue
				}
			}
			rows = append(rows, templates.QuoteRow{
				ID:           rec.Id,
				QuoteNumber:  rec.GetInt("quote_number"),
				CustomerName: name,
				Status:       rec.GetString("status"),
				Total:        rec.GetFloat("total"),
				Created:      rec.GetDateTime("created").Time().Format("02/01/2006"),
			})
		}

		data := templates.QuoteListData{
			Quotes: rows,
			Search: searchQuery,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteListContent(data)
		} else {
			component = templates.QuoteListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/templates"
)

func HandleVisitList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		records, err := app.FindRecordsByFilter(
			"technical_visits",
			"1=1",
			"-scheduled_date",
			0, 0,
			nil,
		)
		if err != nil {
			log.Printf("visit_list: could not query visits: %v", err)
			records = nil
		}

		names := customerNames(app)

		var rows []templates.VisitRow
		for _, rec := range records {
			name := names[rec.GetString("customer")]
			if searchQuery != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(searchQuery)) {
				continue
			}
			rows = append(rows, templates.VisitRow{
				ID:            rec.Id,
				CustomerName:  name,
				ScheduledDate: rec.GetDateTime("scheduled_date").Time().Format("02/01/2006 15:04"),
				Status:        rec.GetString("status"),
				Notes:         rec.GetString("notes"),
			})
		}

		data := templates.VisitListData{
			Visits: rows,
			Search: searchQuery,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.VisitListContent(data)
		} else {
			component = templates.VisitListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// customerNames loads the id→name map used to label rows that relate to a
// customer.
func customerNames(app *pocketbase.PocketBase) map[string]string {
	names := make(map[string]string)
	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return names
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return names
	}
	for _, rec := range records {
		names[rec.Id] = rec.GetString("name")
	}
	return names
}

// customerOptions loads every customer as a select option, sorted by name.
func customerOptions(app *pocketbase.PocketBase) []templates.CustomerSelectItem {
	records, err := app.FindRecordsByFilter("customers", "1=1", "name", 0, 0, nil)
	if err != nil {
		log.Printf("handlers: could not query customers for select: %v", err)
		return nil
	}
	var items []templates.CustomerSelectItem
	for _, rec := range records {
		items = append(items, templates.CustomerSelectItem{
			ID:   rec.Id,
			Name: rec.GetString("name"),
		})
	}
	return items
}

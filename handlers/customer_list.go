package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/templates"
)

func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		var records []*core.Record
		var err error

		if searchQuery != "" {
			records, err = app.FindRecordsByFilter(
				"customers",
				"name ~ {:q} || email ~ {:q} || phone ~ {:q}",
				"name",
				0, 0,
				map[string]any{"q": searchQuery},
			)
		} else {
			records, err = app.FindRecordsByFilter(
				"customers",
				"1=1",
				"name",
				0, 0,
				nil,
			)
		}
		if err != nil {
			log.Printf("customer_list: could not query customers: %v", err)
			records = nil
		}

		var rows []templates.CustomerRow
		for _, rec := range records {
			rows = append(rows, customerRow(rec))
		}

		data := templates.CustomerListData{
			Customers: rows,
			Search:    searchQuery,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CustomerListContent(data)
		} else {
			component = templates.CustomerListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func customerRow(rec *core.Record) templates.CustomerRow {
	return templates.CustomerRow{
		ID:      rec.Id,
		Name:    rec.GetString("name"),
		Email:   rec.GetString("email"),
		Phone:   rec.GetString("phone"),
		Address: rec.GetString("address"),
		Status:  rec.GetString("status"),
		Origin:  rec.GetString("origin"),
	}
}

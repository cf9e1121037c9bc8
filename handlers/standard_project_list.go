package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleStandardProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.URL.Query().Get("category")
		editID := e.Request.URL.Query().Get("edit")

		filter := "1=1"
		params := map[string]any{}
		if category != "" {
			filter += " && category = {:category}"
			params["category"] = category
		}

		records, err := app.FindRecordsByFilter("standard_projects", filter, "name", 0, 0, params)
		if err != nil {
			log.Printf("standard_project_list: could not query catalog: %v", err)
			records = nil
		}

		var rows []templates.StandardProjectRow
		for _, rec := range records {
			row := templates.StandardProjectRow{
				ID:          rec.Id,
				Name:        rec.GetString("name"),
				Category:    rec.GetString("category"),
				Description: rec.GetString("description"),
				BasePrice:   rec.GetFloat("base_price"),
			}
			if images := rec.GetStringSlice("images"); len(images) > 0 {
				row.ImageURL = recordFileURL(rec, images[0])
			}
			rows = append(rows, row)
		}

		form := templates.StandardProjectFormData{Errors: make(map[string]string)}
		if editID != "" {
			if rec, err := app.FindRecordById("standard_projects", editID); err == nil {
				form = templates.StandardProjectFormData{
					ID:          rec.Id,
					Name:        rec.GetString("name"),
					Category:    rec.GetString("category"),
					Description: rec.GetString("description"),
					BasePrice:   rec.GetFloat("base_price"),
					Errors:      make(map[string]string),
				}
			}
		}

		data := templates.StandardProjectListData{
			Projects:   rows,
			Category:   category,
			Categories: services.StandardProjectCategories,
			Form:       form,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.StandardProjectListContent(data)
		} else {
			component = templates.StandardProjectListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

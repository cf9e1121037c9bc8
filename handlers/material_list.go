package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleMaterialList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))
		category := e.Request.URL.Query().Get("category")
		editID := e.Request.URL.Query().Get("edit")

		filter := "1=1"
		params := map[string]any{}
		if searchQuery != "" {
			filter += " && name ~ {:q}"
			params["q"] = searchQuery
		}
		if category != "" {
			filter += " && category = {:category}"
			params["category"] = category
		}

		records, err := app.FindRecordsByFilter("materials", filter, "name", 0, 0, params)
		if err != nil {
			log.Printf("material_list: could not query materials: %v", err)
			records = nil
		}

		var rows []templates.MaterialRow
		for _, rec := range records {
			row := templates.MaterialRow{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				Category:      rec.GetString("category"),
				CategoryLabel: services.MaterialCategoryLabel(rec.GetString("category")),
				Unit:          rec.GetString("unit"),
				CostPrice:     rec.GetFloat("cost_price"),
			}
			if img := rec.GetString("image"); img != "" {
				row.ImageURL = recordFileURL(rec, img)
			}
			rows = append(rows, row)
		}

		form := templates.MaterialFormData{Errors: make(map[string]string)}
		if editID != "" {
			if rec, err := app.FindRecordById("materials", editID); err == nil {
				form = templates.MaterialFormData{
					ID:        rec.Id,
					Name:      rec.GetString("name"),
					Category:  rec.GetString("category"),
					Unit:      rec.GetString("unit"),
					CostPrice: rec.GetFloat("cost_price"),
					Errors:    make(map[string]string),
				}
			}
		}

		data := templates.MaterialListData{
			Materials:  rows,
			Search:     searchQuery,
			Category:   category,
			Categories: materialCategoryOptions(),
			Units:      services.MaterialUnits,
			Form:       form,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.MaterialListContent(data)
		} else {
			component = templates.MaterialListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func materialCategoryOptions() []templates.MaterialCategoryOption {
	var opts []templates.MaterialCategoryOption
	for _, c := range services.MaterialCategories {
		opts = append(opts, templates.MaterialCategoryOption{Value: c.Value, Label: c.Label})
	}
	return opts
}

package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/templates"
)

// projectStatusLabels maps stored project statuses to their pt-BR labels.
var projectStatusLabels = map[string]string{
	"draft":       "Rascunho",
	"proposal":    "Proposta",
	"approved":    "Aprovado",
	"in_progress": "Em andamento",
	"completed":   "Concluído",
	"cancelled":   "Cancelado",
}

func projectStatusLabel(status string) string {
	if label, ok := projectStatusLabels[status]; ok {
		return label
	}
	return status
}

func HandleProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("q"))

		var records []*core.Record
		var err error

		if searchQuery != "" {
			records, err = app.FindRecordsByFilter(
				"projects",
				"title ~ {:q}",
				"-created",
				0, 0,
				map[string]any{"q": searchQuery},
			)
		} else {
			records, err = app.FindRecordsByFilter(
				"projects",
				"1=1",
				"-created",
				0, 0,
				nil,
			)
		}
		if err != nil {
			log.Printf("project_list: could not query projects: %v", err)
			records = nil
		}

		names := customerNames(app)

		var rows []templates.ProjectRow
		for _, rec := range records {
			row := templates.ProjectRow{
				ID:              rec.Id,
				Title:           rec.GetString("title"),
				CustomerName:    names[rec.GetString("customer")],
				Status:          rec.GetString("status"),
				StatusLabel:     projectStatusLabel(rec.GetString("status")),
				BudgetEstimated: rec.GetFloat("budget_estimated"),
				FromQuote:       rec.GetString("source_quote") != "",
			}
			if d := rec.GetDateTime("deadline"); !d.IsZero() {
				row.Deadline = d.Time().Format("02/01/2006")
			}
			rows = append(rows, row)
		}

		data := templates.ProjectListData{
			Projects: rows,
			Search:   searchQuery,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ProjectListContent(data)
		} else {
			component = templates.ProjectListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

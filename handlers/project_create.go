package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func projectStatusOptions() []templates.ProjectStatusOption {
	var opts []templates.ProjectStatusOption
	for _, status := range services.ProjectStatuses {
		opts = append(opts, templates.ProjectStatusOption{
			Value: status,
			Label: projectStatusLabel(status),
		})
	}
	return opts
}

func HandleProjectCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ProjectFormData{
			Status:    "draft",
			Customers: customerOptions(app),
			Statuses:  projectStatusOptions(),
			Errors:    make(map[string]string),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ProjectFormContent(data)
		} else {
			component = templates.ProjectFormPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleProjectSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		data := templates.ProjectFormData{
			Title:           strings.TrimSpace(e.Request.FormValue("title")),
			CustomerID:      e.Request.FormValue("customer_id"),
			Status:          e.Request.FormValue("status"),
			Description:     strings.TrimSpace(e.Request.FormValue("description")),
			BudgetEstimated: e.Request.FormValue("budget_estimated"),
			StartDate:       e.Request.FormValue("start_date"),
			Deadline:        e.Request.FormValue("deadline"),
			Customers:       customerOptions(app),
			Statuses:        projectStatusOptions(),
			Errors:          make(map[string]string),
		}

		if data.Title == "" {
			data.Errors["title"] = "Título é obrigatório"
		}
		if data.Status == "" {
			data.Status = "draft"
		}

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Corrija os erros abaixo")
			var component templ.Component
			if e.Request.Header.Get("HX-Request") == "true" {
				component = templates.ProjectFormContent(data)
			} else {
				component = templates.ProjectFormPage(data, GetHeaderData(e.Request))
			}
			return component.Render(e.Request.Context(), e.Response)
		}

		col, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("project_create: could not find projects collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		budget, _ := strconv.ParseFloat(data.BudgetEstimated, 64)

		record := core.NewRecord(col)
		record.Set("owner", GetSession(e.Request).UserID)
		record.Set("title", data.Title)
		record.Set("customer", data.CustomerID)
		record.Set("status", data.Status)
		record.Set("description", data.Description)
		record.Set("budget_estimated", budget)
		record.Set("start_date", data.StartDate)
		record.Set("deadline", data.Deadline)

		if err := app.Save(record); err != nil {
			log.Printf("project_create: could not save project: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Projeto criado com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/projects")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/projects")
	}
}

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

func HandleCustomerEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")

		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_edit: could not find customer %s: %v", customerID, err)
			SetToast(e, "error", "Cliente não encontrado")
			return e.Redirect(http.StatusFound, "/customers")
		}

		data := templates.CustomerFormData{
			ID:       record.Id,
			Name:     record.GetString("name"),
			Email:    record.GetString("email"),
			Phone:    record.GetString("phone"),
			Document: record.GetString("document"),
			Address:  record.GetString("address"),
			Origin:   record.GetString("origin"),
			Status:   record.GetString("status"),
			Origins:  services.CustomerOrigins,
			Statuses: services.CustomerStatuses,
			Errors:   make(map[string]string),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CustomerFormContent(data)
		} else {
			component = templates.CustomerFormPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleCustomerUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		customerID := e.Request.PathValue("id")

		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_edit: could not find customer %s: %v", customerID, err)
			return ErrorToast(e, http.StatusNotFound, "Cliente não encontrado")
		}

		data := customerFormFromRequest(e)
		data.ID = customerID

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Corrija os erros abaixo")
			var component templ.Component
			if e.Request.Header.Get("HX-Request") == "true" {
				component = templates.CustomerFormContent(data)
			} else {
				component = templates.CustomerFormPage(data, GetHeaderData(e.Request))
			}
			return component.Render(e.Request.Context(), e.Response)
		}

		setCustomerFields(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("customer_edit: could not update customer %s: %v", customerID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Cliente atualizado com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers")
	}
}

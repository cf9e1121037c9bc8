package handlers

import (
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CustomerFormData{
			Status:   "Lead",
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

func HandleCustomerSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		data := customerFormFromRequest(e)

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

		col, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			log.Printf("customer_create: could not find customers collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		record := core.NewRecord(col)
		record.Set("owner", GetSession(e.Request).UserID)
		setCustomerFields(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("customer_create: could not save customer: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Cliente cadastrado com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers")
	}
}

// customerFormFromRequest parses and validates the customer form.
func customerFormFromRequest(e *core.RequestEvent) templates.CustomerFormData {
	data := templates.CustomerFormData{
		Name:     strings.TrimSpace(e.Request.FormValue("name")),
		Email:    strings.TrimSpace(e.Request.FormValue("email")),
		Phone:    strings.TrimSpace(e.Request.FormValue("phone")),
		Document: strings.TrimSpace(e.Request.FormValue("document")),
		Address:  strings.TrimSpace(e.Request.FormValue("address")),
		Origin:   e.Request.FormValue("origin"),
		Status:   e.Request.FormValue("status"),
		Origins:  services.CustomerOrigins,
		Statuses: services.CustomerStatuses,
		Errors:   make(map[string]string),
	}

	switch {
	case data.Name == "":
		data.Errors["name"] = "Nome é obrigatório"
	case len([]rune(data.Name)) < 3:
		data.Errors["name"] = "Nome deve ter ao menos 3 caracteres"
	}
	if data.Phone != "" && digitCount(data.Phone) < 10 {
		data.Errors["phone"] = "Telefone deve ter ao menos 10 dígitos"
	}
	if data.Email != "" {
		if _, err := mail.ParseAddress(data.Email); err != nil {
			data.Errors["email"] = "E-mail inválido"
		}
	}
	if data.Status == "" {
		data.Status = "Lead"
	}
	return data
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func setCustomerFields(record *core.Record, data templates.CustomerFormData) {
	record.Set("name", data.Name)
	record.Set("email", data.Email)
	record.Set("phone", data.Phone)
	record.Set("document", data.Document)
	record.Set("address", data.Address)
	record.Set("origin", data.Origin)
	record.Set("status", data.Status)
}

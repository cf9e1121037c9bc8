package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleCustomerView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")

		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_view: could not find customer %s: %v", customerID, err)
			SetToast(e, "error", "Cliente não encontrado")
			return e.Redirect(http.StatusFound, "/customers")
		}

		data := customerDetailsData(app, record)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CustomerDetailsContent(data)
		} else {
			component = templates.CustomerDetailsPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleInteractionSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		customerID := e.Request.PathValue("id")

		customer, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_view: could not find customer %s: %v", customerID, err)
			return ErrorToast(e, http.StatusNotFound, "Cliente não encontrado")
		}

		description := strings.TrimSpace(e.Request.FormValue("description"))
		if description == "" {
			return ErrorToast(e, http.StatusBadRequest, "Descrição é obrigatória")
		}

		col, err := app.FindCollectionByNameOrId("interactions")
		if err != nil {
			log.Printf("customer_view: could not find interactions collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		record := core.NewRecord(col)
		record.Set("customer", customer.Id)
		record.Set("type", e.Request.FormValue("type"))
		record.Set("channel", e.Request.FormValue("channel"))
		record.Set("urgency", e.Request.FormValue("urgency"))
		record.Set("description", description)

		if err := app.Save(record); err != nil {
			log.Printf("customer_view: could not save interaction: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Atendimento registrado")

		data := customerDetailsData(app, customer)
		return templates.CustomerDetailsContent(data).Render(e.Request.Context(), e.Response)
	}
}

// customerDetailsData assembles the details page: the customer, its visit
// history and its interaction log, newest first.
func customerDetailsData(app *pocketbase.PocketBase, customer *core.Record) templates.CustomerDetailsData {
	data := templates.CustomerDetailsData{
		Customer:  customerRow(customer),
		Document:  customer.GetString("document"),
		Urgencies: services.InteractionUrgencies,
	}

	visits, err := app.FindRecordsByFilter(
		"technical_visits",
		"customer = {:customerId}",
		"-scheduled_date", 0, 0,
		map[string]any{"customerId": customer.Id},
	)
	if err != nil {
		log.Printf("customer_view: could not query visits: %v", err)
	}
	for _, v := range visits {
		data.Visits = append(data.Visits, templates.CustomerVisitRow{
			ID:            v.Id,
			ScheduledDate: v.GetDateTime("scheduled_date").Time().Format("02/01/2006 15:04"),
			Status:        v.GetString("status"),
		})
	}

	interactions, err := app.FindRecordsByFilter(
		"interactions",
		"customer = {:customerId}",
		"-created", 0, 0,
		map[string]any{"customerId": customer.Id},
	)
	if err != nil {
		log.Printf("customer_view: could not query interactions: %v", err)
	}
	for _, it := range interactions {
		data.Interactions = append(data.Interactions, templates.CustomerInteractionRow{
			Type:        it.GetString("type"),
			Channel:     it.GetString("channel"),
			Description: it.GetString("description"),
			Urgency:     it.GetString("urgency"),
			Created:     it.GetDateTime("created").Time().Format("02/01/2006"),
		})
	}

	return data
}

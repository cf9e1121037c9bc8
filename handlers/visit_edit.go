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

func HandleVisitEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		visitID := e.Request.PathValue("id")

		record, err := app.FindRecordById("technical_visits", visitID)
		if err != nil {
			log.Printf("visit_edit: could not find visit %s: %v", visitID, err)
			SetToast(e, "error", "Visita não encontrada")
			return e.Redirect(http.StatusFound, "/visits")
		}

		data := templates.VisitFormData{
			ID:            record.Id,
			CustomerID:    record.GetString("customer"),
			ScheduledDate: record.GetDateTime("scheduled_date").Time().Format("2006-01-02T15:04"),
			Status:        record.GetString("status"),
			Notes:         record.GetString("notes"),
			MeasureHeight: record.GetString("measure_height"),
			MeasureWidth:  record.GetString("measure_width"),
			MeasureDepth:  record.GetString("measure_depth"),
			Color:         record.GetString("color"),
			HardwareType:  record.GetString("hardware_type"),
			LED:           record.GetBool("led"),
			LEDColor:      record.GetString("led_color"),
			HingesType:    record.GetString("hinges_type"),
			SlidesType:    record.GetString("slides_type"),
			MDFThickness:  record.GetString("mdf_thickness"),
			Customers:     customerOptions(app),
			Statuses:      services.VisitStatuses,
			Errors:        make(map[string]string),
		}
		for _, name := range record.GetStringSlice("photos") {
			data.Photos = append(data.Photos, recordFileURL(record, name))
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.VisitFormContent(data)
		} else {
			component = templates.VisitFormPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleVisitUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		visitID := e.Request.PathValue("id")

		record, err := app.FindRecordById("technical_visits", visitID)
		if err != nil {
			log.Printf("visit_edit: could not find visit %s: %v", visitID, err)
			return ErrorToast(e, http.StatusNotFound, "Visita não encontrada")
		}

		data := visitFormFromRequest(app, e)
		data.ID = visitID

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Corrija os erros abaixo")
			var component templ.Component
			if e.Request.Header.Get("HX-Request") == "true" {
				component = templates.VisitFormContent(data)
			} else {
				component = templates.VisitFormPage(data, GetHeaderData(e.Request))
			}
			return component.Render(e.Request.Context(), e.Response)
		}

		setVisitFields(record, data)
		attachVisitPhotos(e, record)

		if err := app.Save(record); err != nil {
			log.Printf("visit_edit: could not update visit %s: %v", visitID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Visita atualizada com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/visits")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/visits")
	}
}

// recordFileURL builds the public file URL PocketBase serves uploads under.
func recordFileURL(record *core.Record, filename string) string {
	return "/api/files/" + record.Collection().Name + "/" + record.Id + "/" + filename
}

package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleVisitCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.VisitFormData{
			CustomerID: e.Request.PathValue("customerId"),
			Status:     "Agendada",
			Customers:  customerOptions(app),
			Statuses:   services.VisitStatuses,
			Errors:     make(map[string]string),
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

func HandleVisitSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := visitFormFromRequest(app, e)

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

		col, err := app.FindCollectionByNameOrId("technical_visits")
		if err != nil {
			log.Printf("visit_create: could not find technical_visits collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		record := core.NewRecord(col)
		record.Set("owner", GetSession(e.Request).UserID)
		setVisitFields(record, data)
		attachVisitPhotos(e, record)

		if err := app.Save(record); err != nil {
			log.Printf("visit_create: could not save visit: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Visita agendada com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/visits")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/visits")
	}
}

// visitFormFromRequest parses and validates the multipart visit form.
func visitFormFromRequest(app *pocketbase.PocketBase, e *core.RequestEvent) templates.VisitFormData {
	// 32 MB in-memory limit before multipart spills to disk
	if err := e.Request.ParseMultipartForm(32 << 20); err != nil {
		// Plain forms without file inputs still arrive urlencoded
		if err := e.Request.ParseForm(); err != nil {
			log.Printf("visit_create: could not parse form: %v", err)
		}
	}

	data := templates.VisitFormData{
		CustomerID:    e.Request.FormValue("customer_id"),
		ScheduledDate: strings.TrimSpace(e.Request.FormValue("scheduled_date")),
		Status:        e.Request.FormValue("status"),
		Notes:         strings.TrimSpace(e.Request.FormValue("notes")),
		MeasureHeight: strings.TrimSpace(e.Request.FormValue("measure_height")),
		MeasureWidth:  strings.TrimSpace(e.Request.FormValue("measure_width")),
		MeasureDepth:  strings.TrimSpace(e.Request.FormValue("measure_depth")),
		Color:         strings.TrimSpace(e.Request.FormValue("color")),
		HardwareType:  strings.TrimSpace(e.Request.FormValue("hardware_type")),
		LED:           e.Request.FormValue("led") != "",
		LEDColor:      strings.TrimSpace(e.Request.FormValue("led_color")),
		HingesType:    strings.TrimSpace(e.Request.FormValue("hinges_type")),
		SlidesType:    strings.TrimSpace(e.Request.FormValue("slides_type")),
		MDFThickness:  strings.TrimSpace(e.Request.FormValue("mdf_thickness")),
		Customers:     customerOptions(app),
		Statuses:      services.VisitStatuses,
		Errors:        make(map[string]string),
	}

	if data.CustomerID == "" {
		data.Errors["customer_id"] = "Cliente é obrigatório"
	}
	if data.ScheduledDate == "" {
		data.Errors["scheduled_date"] = "Data é obrigatória"
	}
	if data.Status == "" {
		data.Status = "Agendada"
	}
	return data
}

func setVisitFields(record *core.Record, data templates.VisitFormData) {
	record.Set("customer", data.CustomerID)
	record.Set("scheduled_date", data.ScheduledDate)
	record.Set("status", data.Status)
	record.Set("notes", data.Notes)
	record.Set("measure_height", data.MeasureHeight)
	record.Set("measure_width", data.MeasureWidth)
	record.Set("measure_depth", data.MeasureDepth)
	record.Set("color", data.Color)
	record.Set("hardware_type", data.HardwareType)
	record.Set("led", data.LED)
	record.Set("led_color", data.LEDColor)
	record.Set("hinges_type", data.HingesType)
	record.Set("slides_type", data.SlidesType)
	record.Set("mdf_thickness", data.MDFThickness)
}

// attachVisitPhotos appends any uploaded photos to the record. Uploads are
// additive; existing photos stay.
func attachVisitPhotos(e *core.RequestEvent, record *core.Record) {
	if e.Request.MultipartForm == nil {
		return
	}
	for _, header := range e.Request.MultipartForm.File["photos"] {
		file, err := filesystem.NewFileFromMultipart(header)
		if err != nil {
			log.Printf("visit_create: could not read uploaded photo: %v", err)
			continue
		}
		record.Set("photos+", file)
	}
}

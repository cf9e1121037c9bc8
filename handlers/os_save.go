package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
)

func HandleOSSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		osID := e.Request.PathValue("id")

		record, err := app.FindRecordById("service_orders", osID)
		if err != nil {
			log.Printf("os_save: could not find service order %s: %v", osID, err)
			return ErrorToast(e, http.StatusNotFound, "Ordem de serviço não encontrada")
		}

		status := e.Request.FormValue("status")
		if status != "" {
			if !services.ValidOSStatus(status) {
				return ErrorToast(e, http.StatusBadRequest, "Status inválido")
			}
			if !services.CanTransitionOS(record.GetString("status"), status) {
				return ErrorToast(e, http.StatusConflict, "Transição de status não permitida")
			}
			record.Set("status", status)
		}

		record.Set("responsible", strings.TrimSpace(e.Request.FormValue("responsible")))
		record.Set("start_date", e.Request.FormValue("start_date"))
		record.Set("end_date", e.Request.FormValue("end_date"))
		record.Set("technical_notes", strings.TrimSpace(e.Request.FormValue("technical_notes")))

		if err := app.Save(record); err != nil {
			log.Printf("os_save: could not update service order %s: %v", osID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Ordem de serviço atualizada")

		redirectURL := "/finance/os/" + osID
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", redirectURL)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, redirectURL)
	}
}

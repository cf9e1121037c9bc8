package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleVisitDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		visitID := e.Request.PathValue("id")
		if visitID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Visita não informada")
		}

		record, err := app.FindRecordById("technical_visits", visitID)
		if err != nil {
			log.Printf("visit_delete: could not find visit %s: %v", visitID, err)
			return ErrorToast(e, http.StatusNotFound, "Visita não encontrada")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("visit_delete: failed to delete visit %s: %v", visitID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Visita excluída com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/visits")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/visits")
	}
}

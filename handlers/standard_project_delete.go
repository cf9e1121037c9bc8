package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleStandardProjectDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Projeto não informado")
		}

		record, err := app.FindRecordById("standard_projects", projectID)
		if err != nil {
			log.Printf("standard_project_delete: could not find entry %s: %v", projectID, err)
			return ErrorToast(e, http.StatusNotFound, "Projeto não encontrado")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("standard_project_delete: failed to delete entry %s: %v", projectID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Projeto excluído com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/catalog")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/catalog")
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleMaterialDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		materialID := e.Request.PathValue("id")
		if materialID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Material não informado")
		}

		record, err := app.FindRecordById("materials", materialID)
		if err != nil {
			log.Printf("material_delete: could not find material %s: %v", materialID, err)
			return ErrorToast(e, http.StatusNotFound, "Material não encontrado")
		}

		// Quote lines keep their description and price after the catalog
		// entry goes away, so no reference check is needed here.
		if err := app.Delete(record); err != nil {
			log.Printf("material_delete: failed to delete material %s: %v", materialID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Material excluído com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/finance/materials")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/finance/materials")
	}
}

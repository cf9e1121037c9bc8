package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"
)

func HandleStandardProjectSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(32 << 20); err != nil {
			if err := e.Request.ParseForm(); err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
			}
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Nome é obrigatório")
		}
		basePrice, err := strconv.ParseFloat(e.Request.FormValue("base_price"), 64)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Preço base inválido")
		}

		var record *core.Record
		if projectID := e.Request.PathValue("id"); projectID != "" {
			record, err = app.FindRecordById("standard_projects", projectID)
			if err != nil {
				log.Printf("standard_project_save: could not find entry %s: %v", projectID, err)
				return ErrorToast(e, http.StatusNotFound, "Projeto não encontrado")
			}
		} else {
			col, err := app.FindCollectionByNameOrId("standard_projects")
			if err != nil {
				log.Printf("standard_project_save: could not find standard_projects collection: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
			}
			record = core.NewRecord(col)
			record.Set("owner", GetSession(e.Request).UserID)
		}

		record.Set("name", name)
		record.Set("category", e.Request.FormValue("category"))
		record.Set("description", strings.TrimSpace(e.Request.FormValue("description")))
		record.Set("base_price", basePrice)

		if e.Request.MultipartForm != nil {
			for _, header := range e.Request.MultipartForm.File["image"] {
				file, err := filesystem.NewFileFromMultipart(header)
				if err != nil {
					log.Printf("standard_project_save: could not read uploaded image: %v", err)
					continue
				}
				record.Set("images+", file)
			}
		}

		if err := app.Save(record); err != nil {
			log.Printf("standard_project_save: could not save entry: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Projeto salvo com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/catalog")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/catalog")
	}
}

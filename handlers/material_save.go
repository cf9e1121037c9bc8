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

func HandleMaterialSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
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
		costPrice, err := strconv.ParseFloat(e.Request.FormValue("cost_price"), 64)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Preço de custo inválido")
		}

		var record *core.Record
		if materialID := e.Request.PathValue("id"); materialID != "" {
			record, err = app.FindRecordById("materials", materialID)
			if err != nil {
				log.Printf("material_save: could not find material %s: %v", materialID, err)
				return ErrorToast(e, http.StatusNotFound, "Material não encontrado")
			}
		} else {
			col, err := app.FindCollectionByNameOrId("materials")
			if err != nil {
				log.Printf("material_save: could not find materials collection: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
			}
			record = core.NewRecord(col)
			record.Set("owner", GetSession(e.Request).UserID)
		}

		record.Set("name", name)
		record.Set("category", e.Request.FormValue("category"))
		record.Set("unit", e.Request.FormValue("unit"))
		record.Set("cost_price", costPrice)

		if e.Request.MultipartForm != nil {
			if headers := e.Request.MultipartForm.File["image"]; len(headers) > 0 {
				file, err := filesystem.NewFileFromMultipart(headers[0])
				if err != nil {
					log.Printf("material_save: could not read uploaded image: %v", err)
				} else {
					record.Set("image", file)
				}
			}
		}

		if err := app.Save(record); err != nil {
			log.Printf("material_save: could not save material: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Material salvo com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/finance/materials")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/finance/materials")
	}
}

package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"

	"marcenaria/templates"
)

// Photo changes save immediately, unlike the rest of the order form, so a
// dropped connection never loses shop-floor pictures.

func HandleOSPhotoAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		osID := e.Request.PathValue("id")

		record, err := app.FindRecordById("service_orders", osID)
		if err != nil {
			log.Printf("os_photos: could not find service order %s: %v", osID, err)
			return ErrorToast(e, http.StatusNotFound, "Ordem de serviço não encontrada")
		}

		if err := e.Request.ParseMultipartForm(32 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Envio de arquivo inválido")
		}
		headers := e.Request.MultipartForm.File["photo"]
		if len(headers) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Nenhuma foto enviada")
		}

		file, err := filesystem.NewFileFromMultipart(headers[0])
		if err != nil {
			log.Printf("os_photos: could not read uploaded photo: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Não foi possível ler a foto")
		}
		record.Set("photos+", file)

		if err := app.Save(record); err != nil {
			log.Printf("os_photos: could not save photo on %s: %v", osID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Foto adicionada")
		return renderOSPhotos(app, e, record.Id)
	}
}

func HandleOSPhotoRemove(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		osID := e.Request.PathValue("id")

		record, err := app.FindRecordById("service_orders", osID)
		if err != nil {
			log.Printf("os_photos: could not find service order %s: %v", osID, err)
			return ErrorToast(e, http.StatusNotFound, "Ordem de serviço não encontrada")
		}

		index, err := strconv.Atoi(e.Request.PathValue("index"))
		photos := record.GetStringSlice("photos")
		if err != nil || index < 0 || index >= len(photos) {
			return ErrorToast(e, http.StatusBadRequest, "Foto não encontrada")
		}

		record.Set("photos-", photos[index])

		if err := app.Save(record); err != nil {
			log.Printf("os_photos: could not remove photo %d from %s: %v", index, osID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Foto removida")
		return renderOSPhotos(app, e, record.Id)
	}
}

// renderOSPhotos re-reads the order and swaps in the fresh photo grid.
func renderOSPhotos(app *pocketbase.PocketBase, e *core.RequestEvent, osID string) error {
	record, err := app.FindRecordById("service_orders", osID)
	if err != nil {
		return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
	}
	data := osDetailsData(app, record)
	return templates.OSPhotosContent(data).Render(e.Request.Context(), e.Response)
}

package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleTransactionDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		transactionID := e.Request.PathValue("id")
		if transactionID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Lançamento não informado")
		}

		record, err := app.FindRecordById("transactions", transactionID)
		if err != nil {
			log.Printf("transaction_delete: could not find transaction %s: %v", transactionID, err)
			return ErrorToast(e, http.StatusNotFound, "Lançamento não encontrado")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("transaction_delete: failed to delete transaction %s: %v", transactionID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Lançamento excluído")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/finance")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/finance")
	}
}

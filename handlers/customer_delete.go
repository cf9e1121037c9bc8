package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		if customerID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Cliente não informado")
		}

		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_delete: could not find customer %s: %v", customerID, err)
			return ErrorToast(e, http.StatusNotFound, "Cliente não encontrado")
		}

		// Quotes reference customers without cascade, so block the delete
		// instead of orphaning them.
		quotes, err := app.FindRecordsByFilter(
			"quotes",
			"customer = {:customerId}",
			"", 1, 0,
			map[string]any{"customerId": customerID},
		)
		if err == nil && len(quotes) > 0 {
			return ErrorToast(e, http.StatusConflict, "Cliente possui orçamentos e não pode ser excluído")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("customer_delete: failed to delete customer %s: %v", customerID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Cliente excluído com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers")
	}
}

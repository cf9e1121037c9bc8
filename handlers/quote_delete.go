package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Orçamento não informado")
		}

		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_delete: could not find quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusNotFound, "Orçamento não encontrado")
		}

		// Approval already spawned a service order for this quote; its
		// required relation would dangle.
		orders, err := app.FindRecordsByFilter(
			"service_orders",
			"quote = {:quoteId}",
			"", 1, 0,
			map[string]any{"quoteId": quoteID},
		)
		if err == nil && len(orders) > 0 {
			return ErrorToast(e, http.StatusConflict, "Orçamento aprovado possui OS e não pode ser excluído")
		}

		// Items cascade with the quote.
		if err := app.Delete(record); err != nil {
			log.Printf("quote_delete: failed to delete quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Orçamento excluído com sucesso")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/finance/quotes")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/finance/quotes")
	}
}

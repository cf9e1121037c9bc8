package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleTransactionSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		description := strings.TrimSpace(e.Request.FormValue("description"))
		if description == "" {
			return ErrorToast(e, http.StatusBadRequest, "Descrição é obrigatória")
		}
		amount, err := strconv.ParseFloat(e.Request.FormValue("amount"), 64)
		if err != nil || amount <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Valor inválido")
		}
		date := e.Request.FormValue("date")
		if date == "" {
			return ErrorToast(e, http.StatusBadRequest, "Data é obrigatória")
		}
		txType := e.Request.FormValue("type")
		if txType != "expense" {
			txType = "income"
		}

		col, err := app.FindCollectionByNameOrId("transactions")
		if err != nil {
			log.Printf("transaction_create: could not find transactions collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		record := core.NewRecord(col)
		record.Set("owner", GetSession(e.Request).UserID)
		record.Set("type", txType)
		record.Set("category", e.Request.FormValue("category"))
		record.Set("description", description)
		record.Set("amount", amount)
		record.Set("date", date)

		if err := app.Save(record); err != nil {
			log.Printf("transaction_create: could not save transaction: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Lançamento registrado")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/finance")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/finance")
	}
}

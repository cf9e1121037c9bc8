package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleTransactionList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter(
			"transactions",
			"1=1",
			"-date",
			0, 0,
			nil,
		)
		if err != nil {
			log.Printf("transaction_list: could not query transactions: %v", err)
			records = nil
		}

		data := templates.TransactionListData{
			Form: templates.TransactionFormData{
				Type:       "income",
				Categories: services.TransactionCategories,
				Errors:     make(map[string]string),
			},
		}

		for _, rec := range records {
			amount := rec.GetFloat("amount")
			txType := rec.GetString("type")
			if txType == "income" {
				data.TotalIncome += amount
			} else {
				data.TotalExpense += amount
			}
			data.Transactions = append(data.Transactions, templates.TransactionRow{
				ID:          rec.Id,
				Date:        rec.GetDateTime("date").Time().Format("02/01/2006"),
				Description: rec.GetString("description"),
				Category:    rec.GetString("category"),
				Type:        txType,
				Amount:      amount,
			})
		}
		data.Balance = data.TotalIncome - data.TotalExpense

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.TransactionListContent(data)
		} else {
			component = templates.TransactionListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

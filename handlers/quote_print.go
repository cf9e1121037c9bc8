package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/templates"
)

func HandleQuotePrint(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_print: could not find quote %s: %v", quoteID, err)
			SetToast(e, "error", "Orçamento não encontrado")
			return e.Redirect(http.StatusFound, "/finance/quotes")
		}

		data := templates.QuotePrintData{
			QuoteNumber:       quote.GetInt("quote_number"),
			Status:            quote.GetString("status"),
			Created:           quote.GetDateTime("created").Time().Format("02/01/2006"),
			Discount:          quote.GetFloat("discount"),
			DiscountType:      quote.GetString("discount_type"),
			Total:             quote.GetFloat("total"),
			PaymentConditions: quote.GetString("payment_conditions"),
		}

		if customer, err := app.FindRecordById("customers", quote.GetString("customer")); err == nil {
			data.CustomerName = customer.GetString("name")
			data.CustomerPhone = customer.GetString("phone")
			data.CustomerAddress = customer.GetString("address")
		}

		items, _ := quoteItemRows(app, quote.Id)
		data.Items = items
		for _, item := range items {
			data.Subtotal += item.Subtotal
		}

		return templates.QuotePrintPage(data).Render(e.Request.Context(), e.Response)
	}
}

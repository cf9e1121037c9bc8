package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
)

func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_export: could not find quote %s: %v", quoteID, err)
			return ErrorToast(e, http.StatusNotFound, "Orçamento não encontrado")
		}

		data := services.QuoteExportData{
			QuoteNumber:       quote.GetInt("quote_number"),
			Status:            quote.GetString("status"),
			CreatedDate:       quote.GetDateTime("created").Time().Format("02/01/2006"),
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
		for _, item := range items {
			data.Items = append(data.Items, services.QuoteExportItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Subtotal:    item.Subtotal,
			})
			data.Subtotal += item.Subtotal
		}

		pdf, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export: could not generate PDF: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Falha ao gerar o PDF")
		}

		filename := fmt.Sprintf("orcamento-%03d.pdf", data.QuoteNumber)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, err = e.Response.Write(pdf)
		return err
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.QuoteFormData{
			Status:       services.QuoteStatusDraft,
			DiscountType: services.DiscountCurrency,
			Customers:    customerOptions(app),
			Materials:    materialOptions(app),
			Statuses:     services.QuoteStatuses,
			Errors:       make(map[string]string),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteFormContent(data)
		} else {
			component = templates.QuoteFormPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleQuoteEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_edit: could not find quote %s: %v", quoteID, err)
			SetToast(e, "error", "Orçamento não encontrado")
			return e.Redirect(http.StatusFound, "/finance/quotes")
		}

		data := templates.QuoteFormData{
			ID:                quote.Id,
			QuoteNumber:       quote.GetInt("quote_number"),
			CustomerID:        quote.GetString("customer"),
			Status:            quote.GetString("status"),
			Discount:          quote.GetFloat("discount"),
			DiscountType:      quote.GetString("discount_type"),
			PaymentConditions: quote.GetString("payment_conditions"),
			Notes:             quote.GetString("notes"),
			Customers:         customerOptions(app),
			Materials:         materialOptions(app),
			Statuses:          services.QuoteStatuses,
			Errors:            make(map[string]string),
		}
		if data.DiscountType == "" {
			data.DiscountType = services.DiscountCurrency
		}

		items, inputs := quoteItemRows(app, quote.Id)
		data.Items = items

		totals := services.CalcQuoteTotals(inputs, data.Discount, data.DiscountType)
		data.Subtotal = totals.Subtotal
		data.Total = totals.Total

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteFormContent(data)
		} else {
			component = templates.QuoteFormPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// quoteItemRows loads the stored items of a quote in both the template and
// the pricing shapes.
func quoteItemRows(app *pocketbase.PocketBase, quoteID string) ([]templates.QuoteItemRow, []services.QuoteItemInput) {
	records, err := app.FindRecordsByFilter(
		"quote_items",
		"quote = {:quoteId}",
		"created", 0, 0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		log.Printf("quote_edit: could not query quote items: %v", err)
		return nil, nil
	}

	var rows []templates.QuoteItemRow
	var inputs []services.QuoteItemInput
	for _, rec := range records {
		rows = append(rows, templates.QuoteItemRow{
			MaterialID:  rec.GetString("material"),
			Description: rec.GetString("description"),
			Quantity:    rec.GetFloat("quantity"),
			UnitPrice:   rec.GetFloat("unit_price"),
			Subtotal:    rec.GetFloat("subtotal"),
		})
		inputs = append(inputs, services.QuoteItemInput{
			MaterialID:  rec.GetString("material"),
			Description: rec.GetString("description"),
			Quantity:    rec.GetFloat("quantity"),
			UnitPrice:   rec.GetFloat("unit_price"),
		})
	}
	return rows, inputs
}

// materialOptions loads the catalog entries the editor can pull in as lines.
func materialOptions(app *pocketbase.PocketBase) []templates.MaterialSelectItem {
	records, err := app.FindRecordsByFilter("materials", "1=1", "name", 0, 0, nil)
	if err != nil {
		log.Printf("quote_edit: could not query materials for picker: %v", err)
		return nil
	}
	var items []templates.MaterialSelectItem
	for _, rec := range records {
		items = append(items, templates.MaterialSelectItem{
			ID:        rec.Id,
			Name:      rec.GetString("name"),
			Unit:      rec.GetString("unit"),
			CostPrice: rec.GetFloat("cost_price"),
		})
	}
	return items
}

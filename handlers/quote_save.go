package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/services"
	"marcenaria/templates"
)

func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		quoteID := e.Request.PathValue("id")
		if quoteID != "" {
			if _, err := app.FindRecordById("quotes", quoteID); err != nil {
				log.Printf("quote_save: could not find quote %s: %v", quoteID, err)
				return ErrorToast(e, http.StatusNotFound, "Orçamento não encontrado")
			}
		}

		input, data, ok := quoteSaveInputFromRequest(app, e, quoteID)
		if !ok {
			SetToast(e, "warning", "Corrija os erros abaixo")
			var component templ.Component
			if e.Request.Header.Get("HX-Request") == "true" {
				component = templates.QuoteFormContent(data)
			} else {
				component = templates.QuoteFormPage(data, GetHeaderData(e.Request))
			}
			return component.Render(e.Request.Context(), e.Response)
		}

		result, err := services.SaveQuote(app, input)
		if err != nil {
			log.Printf("quote_save: could not save quote: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		if input.Status == services.QuoteStatusApproved {
			SetToast(e, "success", "Orçamento aprovado, projeto e OS gerados")
		} else {
			SetToast(e, "success", "Orçamento salvo com sucesso")
		}
		log.Printf("quote_save: saved quote #%03d (%s)", result.QuoteNumber, result.QuoteID)

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/finance/quotes")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/finance/quotes")
	}
}

// quoteSaveInputFromRequest parses the editor form into a save input. On
// validation failure it returns the re-renderable form data and ok=false.
func quoteSaveInputFromRequest(app *pocketbase.PocketBase, e *core.RequestEvent, quoteID string) (services.QuoteSaveInput, templates.QuoteFormData, bool) {
	form := e.Request.PostForm

	discount, _ := strconv.ParseFloat(e.Request.FormValue("discount"), 64)
	discountType := e.Request.FormValue("discount_type")
	if discountType != services.DiscountPercent {
		discountType = services.DiscountCurrency
	}
	status := e.Request.FormValue("status")
	if !services.ValidQuoteStatus(status) {
		status = services.QuoteStatusDraft
	}

	input := services.QuoteSaveInput{
		QuoteID:           quoteID,
		OwnerID:           GetSession(e.Request).UserID,
		CustomerID:        e.Request.FormValue("customer_id"),
		Status:            status,
		Discount:          discount,
		DiscountType:      discountType,
		PaymentConditions: e.Request.FormValue("payment_conditions"),
		Notes:             e.Request.FormValue("notes"),
	}

	// Item inputs arrive as parallel arrays, one entry per editor row.
	materialIDs := form["item_material_id"]
	descriptions := form["item_description"]
	quantities := form["item_quantity"]
	unitPrices := form["item_unit_price"]

	for i := range descriptions {
		quantity := 0.0
		if i < len(quantities) {
			quantity, _ = strconv.ParseFloat(quantities[i], 64)
		}
		unitPrice := 0.0
		if i < len(unitPrices) {
			unitPrice, _ = strconv.ParseFloat(unitPrices[i], 64)
		}
		materialID := ""
		if i < len(materialIDs) {
			materialID = materialIDs[i]
		}
		if descriptions[i] == "" && quantity == 0 && unitPrice == 0 {
			continue // untouched blank row
		}
		input.Items = append(input.Items, services.QuoteItemInput{
			MaterialID:  materialID,
			Description: descriptions[i],
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}

	errors := make(map[string]string)
	if input.CustomerID == "" {
		errors["customer_id"] = "Cliente é obrigatório"
	}
	if len(input.Items) == 0 {
		errors["items"] = "Adicione ao menos um item"
	}
	if len(errors) == 0 {
		return input, templates.QuoteFormData{}, true
	}

	totals := services.CalcQuoteTotals(input.Items, input.Discount, input.DiscountType)
	data := templates.QuoteFormData{
		ID:                quoteID,
		CustomerID:        input.CustomerID,
		Status:            input.Status,
		Discount:          input.Discount,
		DiscountType:      input.DiscountType,
		PaymentConditions: input.PaymentConditions,
		Notes:             input.Notes,
		Subtotal:          totals.Subtotal,
		Total:             totals.Total,
		Customers:         customerOptions(app),
		Materials:         materialOptions(app),
		Statuses:          services.QuoteStatuses,
		Errors:            errors,
	}
	for _, item := range input.Items {
		data.Items = append(data.Items, templates.QuoteItemRow{
			MaterialID:  item.MaterialID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    services.ItemSubtotal(item.Quantity, item.UnitPrice),
		})
	}
	return services.QuoteSaveInput{}, data, false
}

package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/templates"
)

func HandleFixedCosts(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.FixedCostsData{Errors: make(map[string]string)}

		if record := findFixedCosts(app, GetSession(e.Request).UserID); record != nil {
			data.MonthlyRent = record.GetFloat("monthly_rent")
			data.MonthlyEnergy = record.GetFloat("monthly_energy")
			data.MonthlyInternet = record.GetFloat("monthly_internet")
			data.LaborCostPerHour = record.GetFloat("labor_cost_per_hour")
			data.ProfitMarginPercent = record.GetFloat("profit_margin_percent")
			data.TaxesPercent = record.GetFloat("taxes_percent")
		}
		data.MonthlyTotal = data.MonthlyRent + data.MonthlyEnergy + data.MonthlyInternet

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.FixedCostsContent(data)
		} else {
			component = templates.FixedCostsPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleFixedCostsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados do formulário inválidos")
		}

		ownerID := GetSession(e.Request).UserID

		record := findFixedCosts(app, ownerID)
		if record == nil {
			col, err := app.FindCollectionByNameOrId("fixed_costs")
			if err != nil {
				log.Printf("fixed_costs: could not find fixed_costs collection: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
			}
			record = core.NewRecord(col)
			record.Set("owner", ownerID)
		}

		for _, field := range []string{
			"monthly_rent", "monthly_energy", "monthly_internet",
			"labor_cost_per_hour", "profit_margin_percent", "taxes_percent",
		} {
			value, err := strconv.ParseFloat(e.Request.FormValue(field), 64)
			if err != nil || value < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Valores devem ser números positivos")
			}
			record.Set(field, value)
		}

		if err := app.Save(record); err != nil {
			log.Printf("fixed_costs: could not save costs: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Algo deu errado. Tente novamente.")
		}

		SetToast(e, "success", "Custos atualizados")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/finance/costs")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/finance/costs")
	}
}

// findFixedCosts returns the single costs row of the workshop, preferring
// the signed-in owner's but falling back to any existing row for setups
// without auth.
func findFixedCosts(app *pocketbase.PocketBase, ownerID string) *core.Record {
	if ownerID != "" {
		record, err := app.FindFirstRecordByFilter(
			"fixed_costs",
			"owner = {:owner}",
			map[string]any{"owner": ownerID},
		)
		if err == nil {
			return record
		}
	}
	record, err := app.FindFirstRecordByFilter("fixed_costs", "1=1", nil)
	if err != nil {
		return nil
	}
	return record
}

package templates

import "github.com/a-h/templ"

// FixedCostsData feeds the workshop costs configuration form.
type FixedCostsData struct {
	MonthlyRent         float64
	MonthlyEnergy       float64
	MonthlyInternet     float64
	LaborCostPerHour    float64
	ProfitMarginPercent float64
	TaxesPercent        float64
	MonthlyTotal        float64
	Errors              map[string]string
}

func FixedCostsPage(data FixedCostsData, header HeaderData) templ.Component {
	return page("fixed_costs", header, data)
}

func FixedCostsContent(data FixedCostsData) templ.Component {
	return content("fixed_costs", data)
}

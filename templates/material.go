package templates

import "github.com/a-h/templ"

// MaterialRow is one catalog entry in the materials table.
type MaterialRow struct {
	ID            string
	Name          string
	Category      string
	CategoryLabel string
	Unit          string
	CostPrice     float64
	ImageURL      string
}

// MaterialCategoryOption pairs a stored value with a display label.
type MaterialCategoryOption struct {
	Value string
	Label string
}

// MaterialListData feeds the materials page (list plus inline form).
type MaterialListData struct {
	Materials  []MaterialRow
	Search     string
	Category   string
	Categories []MaterialCategoryOption
	Units      []string
	Form       MaterialFormData
}

// MaterialFormData feeds the create/edit material form.
type MaterialFormData struct {
	ID        string
	Name      string
	Category  string
	Unit      string
	CostPrice float64
	Errors    map[string]string
}

func MaterialListPage(data MaterialListData, header HeaderData) templ.Component {
	return page("material_list", header, data)
}

func MaterialListContent(data MaterialListData) templ.Component {
	return content("material_list", data)
}

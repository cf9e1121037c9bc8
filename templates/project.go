package templates

import "github.com/a-h/templ"

// ProjectRow is one line of the projects list.
type ProjectRow struct {
	ID              string
	Title           string
	CustomerName    string
	Status          string
	StatusLabel     string
	BudgetEstimated float64
	Deadline        string
	FromQuote       bool
}

// ProjectListData feeds the projects list page.
type ProjectListData struct {
	Projects []ProjectRow
	Search   string
}

// ProjectStatusOption pairs a stored status with its pt-BR label.
type ProjectStatusOption struct {
	Value string
	Label string
}

// ProjectFormData feeds the manual project create form.
type ProjectFormData struct {
	Title           string
	CustomerID      string
	Status          string
	Description     string
	BudgetEstimated string
	StartDate       string
	Deadline        string
	Customers       []CustomerSelectItem
	Statuses        []ProjectStatusOption
	Errors          map[string]string
}

func ProjectListPage(data ProjectListData, header HeaderData) templ.Component {
	return page("project_list", header, data)
}

func ProjectListContent(data ProjectListData) templ.Component {
	return content("project_list", data)
}

func ProjectFormPage(data ProjectFormData, header HeaderData) templ.Component {
	return page("project_form", header, data)
}

func ProjectFormContent(data ProjectFormData) templ.Component {
	return content("project_form", data)
}

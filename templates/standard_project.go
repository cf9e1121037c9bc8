package templates

import "github.com/a-h/templ"

// StandardProjectRow is one catalog card.
type StandardProjectRow struct {
	ID          string
	Name        string
	Category    string
	Description string
	BasePrice   float64
	ImageURL    string
}

// StandardProjectListData feeds the catalog page.
type StandardProjectListData struct {
	Projects   []StandardProjectRow
	Category   string
	Categories []string
	Form       StandardProjectFormData
}

// StandardProjectFormData feeds the inline create/edit form.
type StandardProjectFormData struct {
	ID          string
	Name        string
	Category    string
	Description string
	BasePrice   float64
	Errors      map[string]string
}

func StandardProjectListPage(data StandardProjectListData, header HeaderData) templ.Component {
	return page("standard_project_list", header, data)
}

func StandardProjectListContent(data StandardProjectListData) templ.Component {
	return content("standard_project_list", data)
}

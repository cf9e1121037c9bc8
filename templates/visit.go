package templates

import "github.com/a-h/templ"

// VisitRow is one line of the technical visits list.
type VisitRow struct {
	ID            string
	CustomerName  string
	ScheduledDate string
	Status        string
	Notes         string
}

// VisitListData feeds the visits list page.
type VisitListData struct {
	Visits []VisitRow
	Search string
}

// VisitFormData feeds the visit create/edit form.
type VisitFormData struct {
	ID            string
	CustomerID    string
	ScheduledDate string
	Status        string
	Notes         string
	MeasureHeight string
	MeasureWidth  string
	MeasureDepth  string
	Color         string
	HardwareType  string
	LED           bool
	LEDColor      string
	HingesType    string
	SlidesType    string
	MDFThickness  string
	Photos        []string
	Customers     []CustomerSelectItem
	Statuses      []string
	Errors        map[string]string
}

func VisitListPage(data VisitListData, header HeaderData) templ.Component {
	return page("visit_list", header, data)
}

func VisitListContent(data VisitListData) templ.Component {
	return content("visit_list", data)
}

func VisitFormPage(data VisitFormData, header HeaderData) templ.Component {
	return page("visit_form", header, data)
}

func VisitFormContent(data VisitFormData) templ.Component {
	return content("visit_form", data)
}

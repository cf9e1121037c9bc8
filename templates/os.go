package templates

import "github.com/a-h/templ"

// OSRow is one line of the service orders list.
type OSRow struct {
	ID           string
	OSNumber     int
	CustomerName string
	QuoteNumber  int
	Status       string
	Responsible  string
}

// OSListData feeds the service orders list page.
type OSListData struct {
	Orders []OSRow
	Search string
}

// OSStep is one stop of the status stepper.
type OSStep struct {
	Status string
	Active bool
	Past   bool
}

// OSPhoto is one progress photo of the order.
type OSPhoto struct {
	Index int
	URL   string
}

// OSDetailsData feeds the service order details page.
type OSDetailsData struct {
	ID             string
	OSNumber       int
	QuoteID        string
	QuoteNumber    int
	CustomerName   string
	CustomerPhone  string
	Status         string
	Steps          []OSStep
	Responsible    string
	StartDate      string
	EndDate        string
	TechnicalNotes string
	Photos         []OSPhoto
}

func OSListPage(data OSListData, header HeaderData) templ.Component {
	return page("os_list", header, data)
}

func OSListContent(data OSListData) templ.Component {
	return content("os_list", data)
}

func OSDetailsPage(data OSDetailsData, header HeaderData) templ.Component {
	return page("os_details", header, data)
}

func OSDetailsContent(data OSDetailsData) templ.Component {
	return content("os_details", data)
}

// OSPhotosContent renders just the photo grid, the target of the
// auto-saving upload/remove requests.
func OSPhotosContent(data OSDetailsData) templ.Component {
	return content("os_photos", data)
}

package templates

import "github.com/a-h/templ"

// CustomerRow is one line of the customers table.
type CustomerRow struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
	Status  string
	Origin  string
}

// CustomerListData feeds the customers list page.
type CustomerListData struct {
	Customers []CustomerRow
	Search    string
}

// CustomerFormData feeds the create/edit customer form.
type CustomerFormData struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Document string
	Address  string
	Origin   string
	Status   string
	Origins  []string
	Statuses []string
	Errors   map[string]string
}

// CustomerVisitRow is a visit shown in the customer details history.
type CustomerVisitRow struct {
	ID            string
	ScheduledDate string
	Status        string
}

// CustomerInteractionRow is an interaction in the customer history.
type CustomerInteractionRow struct {
	Type        string
	Channel     string
	Description string
	Urgency     string
	Created     string
}

// CustomerDetailsData feeds the customer details page.
type CustomerDetailsData struct {
	Customer     CustomerRow
	Document     string
	Visits       []CustomerVisitRow
	Interactions []CustomerInteractionRow
	Urgencies    []string
}

func CustomerListPage(data CustomerListData, header HeaderData) templ.Component {
	return page("customer_list", header, data)
}

func CustomerListContent(data CustomerListData) templ.Component {
	return content("customer_list", data)
}

func CustomerFormPage(data CustomerFormData, header HeaderData) templ.Component {
	return page("customer_form", header, data)
}

func CustomerFormContent(data CustomerFormData) templ.Component {
	return content("customer_form", data)
}

func CustomerDetailsPage(data CustomerDetailsData, header HeaderData) templ.Component {
	return page("customer_details", header, data)
}

func CustomerDetailsContent(data CustomerDetailsData) templ.Component {
	return content("customer_details", data)
}

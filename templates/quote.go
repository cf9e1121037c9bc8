package templates

import "github.com/a-h/templ"

// QuoteRow is one line of the quotes list.
type QuoteRow struct {
	ID           string
	QuoteNumber  int
	CustomerName string
	Status       string
	Total        float64
	Created      string
}

// QuoteListData feeds the quotes list page.
type QuoteListData struct {
	Quotes []QuoteRow
	Search string
}

// CustomerSelectItem is a customer option in the quote editor.
type CustomerSelectItem struct {
	ID   string
	Name string
}

// MaterialSelectItem is a catalog entry the editor can pull into a line.
type MaterialSelectItem struct {
	ID        string
	Name      string
	Unit      string
	CostPrice float64
}

// QuoteItemRow is one editable line of the quote editor.
type QuoteItemRow struct {
	MaterialID  string
	Description string
	Quantity    float64
	UnitPrice   float64
	Subtotal    float64
}

// QuoteFormData feeds the quote editor.
type QuoteFormData struct {
	ID                string
	QuoteNumber       int
	CustomerID        string
	Status            string
	Discount          float64
	DiscountType      string
	PaymentConditions string
	Notes             string
	Items             []QuoteItemRow
	Subtotal          float64
	Total             float64
	Customers         []CustomerSelectItem
	Materials         []MaterialSelectItem
	Statuses          []string
	Errors            map[string]string
}

// QuotePrintData feeds the print-friendly proposal view.
type QuotePrintData struct {
	QuoteNumber       int
	Status            string
	Created           string
	CustomerName      string
	CustomerPhone     string
	CustomerAddress   string
	Items             []QuoteItemRow
	Subtotal          float64
	Discount          float64
	DiscountType      string
	Total             float64
	PaymentConditions string
}

func QuoteListPage(data QuoteListData, header HeaderData) templ.Component {
	return page("quote_list", header, data)
}

func QuoteListContent(data QuoteListData) templ.Component {
	return content("quote_list", data)
}

func QuoteFormPage(data QuoteFormData, header HeaderData) templ.Component {
	return page("quote_form", header, data)
}

func QuoteFormContent(data QuoteFormData) templ.Component {
	return content("quote_form", data)
}

// QuotePrintPage renders without the app layout: it is meant for the
// browser's print / save-as-PDF surface.
func QuotePrintPage(data QuotePrintData) templ.Component {
	return content("quote_print", data)
}

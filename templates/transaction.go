package templates

import "github.com/a-h/templ"

// TransactionRow is one ledger entry.
type TransactionRow struct {
	ID          string
	Date        string
	Description string
	Category    string
	Type        string
	Amount      float64
}

// TransactionListData feeds the finance ledger page.
type TransactionListData struct {
	Transactions []TransactionRow
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
	Form         TransactionFormData
}

// TransactionFormData feeds the inline new-transaction form.
type TransactionFormData struct {
	Type       string
	Categories []string
	Errors     map[string]string
}

func TransactionListPage(data TransactionListData, header HeaderData) templ.Component {
	return page("transaction_list", header, data)
}

func TransactionListContent(data TransactionListData) templ.Component {
	return content("transaction_list", data)
}

package services

import (
	"testing"

	"marcenaria/testhelpers"
)

func TestProjectTitleForQuote(t *testing.T) {
	tests := []struct {
		quoteID string
		want    string
	}{
		{"abcdef123456", "Projeto do Orçamento #abcde"},
		{"abc", "Projeto do Orçamento #abc"},
		{"", "Projeto do Orçamento #"},
	}

	for _, tt := range tests {
		if got := ProjectTitleForQuote(tt.quoteID); got != tt.want {
			t.Errorf("ProjectTitleForQuote(%q) = %q, want %q", tt.quoteID, got, tt.want)
		}
	}
}

func TestDeriveRecordsForApproval(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Cliente X")
	quote := testhelpers.CreateTestQuote(t, app, customer.Id, 1, QuoteStatusApproved, 540.00)

	if err := DeriveRecordsForApproval(app, "", quote.Id, customer.Id, 540.00); err != nil {
		t.Fatalf("DeriveRecordsForApproval returned error: %v", err)
	}

	projects, err := app.FindRecordsByFilter("projects", "source_quote = {:q}", "", 0, 0,
		map[string]any{"q": quote.Id})
	if err != nil || len(projects) != 1 {
		t.Fatalf("expected exactly one derived project, got %d (err %v)", len(projects), err)
	}

	project := projects[0]
	if got := project.GetFloat("budget_estimated"); got != 540.00 {
		t.Errorf("budget_estimated = %v, want 540.00", got)
	}
	if got := project.GetString("customer"); got != customer.Id {
		t.Errorf("project customer = %q, want %q", got, customer.Id)
	}
	if got := project.GetString("status"); got != "in_progress" {
		t.Errorf("project status = %q, want in_progress", got)
	}
	if got := project.GetString("title"); got != ProjectTitleForQuote(quote.Id) {
		t.Errorf("project title = %q, want %q", got, ProjectTitleForQuote(quote.Id))
	}

	orders, err := app.FindRecordsByFilter("service_orders", "quote = {:q}", "", 0, 0,
		map[string]any{"q": quote.Id})
	if err != nil || len(orders) != 1 {
		t.Fatalf("expected exactly one derived service order, got %d (err %v)", len(orders), err)
	}
	if got := orders[0].GetString("status"); got != OSStatusAwaitingMaterials {
		t.Errorf("service order status = %q, want %q", got, OSStatusAwaitingMaterials)
	}
	if got := orders[0].GetInt("os_number"); got != 1 {
		t.Errorf("os_number = %d, want 1", got)
	}
}

func TestDeriveRecordsForApprovalIdempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Cliente X")
	quote := testhelpers.CreateTestQuote(t, app, customer.Id, 1, QuoteStatusApproved, 540.00)

	for i := 0; i < 3; i++ {
		if err := DeriveRecordsForApproval(app, "", quote.Id, customer.Id, 540.00); err != nil {
			t.Fatalf("run %d returned error: %v", i, err)
		}
	}

	projects, _ := app.FindRecordsByFilter("projects", "source_quote = {:q}", "", 0, 0,
		map[string]any{"q": quote.Id})
	if len(projects) != 1 {
		t.Errorf("expected one project after repeated approvals, got %d", len(projects))
	}

	orders, _ := app.FindRecordsByFilter("service_orders", "quote = {:q}", "", 0, 0,
		map[string]any{"q": quote.Id})
	if len(orders) != 1 {
		t.Errorf("expected one service order after repeated approvals, got %d", len(orders))
	}
}

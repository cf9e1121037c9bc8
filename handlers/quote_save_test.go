package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"marcenaria/services"
	"marcenaria/testhelpers"
)

func TestHandleQuoteSave_CreatesQuoteWithItems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Maria Souza")
	handler := HandleQuoteSave(app)

	form := url.Values{}
	form.Set("customer_id", customer.Id)
	form.Set("status", services.QuoteStatusDraft)
	form.Set("discount", "0")
	form.Set("discount_type", services.DiscountCurrency)
	form.Add("item_material_id", "")
	form.Add("item_description", "Armário de cozinha")
	form.Add("item_quantity", "2")
	form.Add("item_unit_price", "150.00")
	form.Add("item_material_id", "")
	form.Add("item_description", "Bancada MDF")
	form.Add("item_quantity", "1")
	form.Add("item_unit_price", "300.00")

	req := httptest.NewRequest(http.MethodPost, "/finance/quotes",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/finance/quotes")

	quotes, err := app.FindRecordsByFilter("quotes", "customer = {:c}", "", 0, 0,
		map[string]any{"c": customer.Id})
	if err != nil || len(quotes) != 1 {
		t.Fatalf("expected one quote, got %d (err %v)", len(quotes), err)
	}
	quote := quotes[0]
	if got := quote.GetFloat("subtotal"); got != 600.00 {
		t.Errorf("subtotal = %v, want 600.00", got)
	}
	if got := quote.GetFloat("total"); got != 600.00 {
		t.Errorf("total = %v, want 600.00", got)
	}
	if got := quote.GetInt("quote_number"); got != 1 {
		t.Errorf("quote_number = %d, want 1", got)
	}

	items, _ := app.FindRecordsByFilter("quote_items", "quote = {:q}", "", 0, 0,
		map[string]any{"q": quote.Id})
	if len(items) != 2 {
		t.Errorf("expected 2 quote items, got %d", len(items))
	}
}

func TestHandleQuoteSave_MissingCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app)

	form := url.Values{}
	form.Set("customer_id", "")
	form.Add("item_description", "Armário")
	form.Add("item_quantity", "1")
	form.Add("item_unit_price", "100")

	req := httptest.NewRequest(http.MethodPost, "/finance/quotes",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Header().Get("HX-Redirect") != "" {
		t.Error("expected no HX-Redirect for validation error")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Cliente é obrigatório")
}

func TestHandleQuoteSave_NoItems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Maria Souza")
	handler := HandleQuoteSave(app)

	form := url.Values{}
	form.Set("customer_id", customer.Id)
	// one untouched blank editor row
	form.Add("item_description", "")
	form.Add("item_quantity", "0")
	form.Add("item_unit_price", "0")

	req := httptest.NewRequest(http.MethodPost, "/finance/quotes",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Adicione ao menos um item")
}

func TestHandleQuoteSave_ApprovalDerivesProjectAndOS(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Cliente X")
	handler := HandleQuoteSave(app)

	form := url.Values{}
	form.Set("customer_id", customer.Id)
	form.Set("status", services.QuoteStatusApproved)
	form.Set("discount", "10")
	form.Set("discount_type", services.DiscountPercent)
	form.Add("item_description", "Armário")
	form.Add("item_quantity", "2")
	form.Add("item_unit_price", "150.00")
	form.Add("item_description", "Bancada")
	form.Add("item_quantity", "1")
	form.Add("item_unit_price", "300.00")

	req := httptest.NewRequest(http.MethodPost, "/finance/quotes",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/finance/quotes")

	quotes, _ := app.FindRecordsByFilter("quotes", "customer = {:c}", "", 0, 0,
		map[string]any{"c": customer.Id})
	if len(quotes) != 1 {
		t.Fatalf("expected one quote, got %d", len(quotes))
	}
	quote := quotes[0]
	if got := quote.GetFloat("total"); got != 540.00 {
		t.Errorf("total = %v, want 540.00 after 10%% discount", got)
	}
	if quote.GetDateTime("approved_at").IsZero() {
		t.Error("approved_at should be stamped on approval")
	}

	projects, _ := app.FindRecordsByFilter("projects", "source_quote = {:q}", "", 0, 0,
		map[string]any{"q": quote.Id})
	if len(projects) != 1 {
		t.Fatalf("expected one derived project, got %d", len(projects))
	}
	if got := projects[0].GetFloat("budget_estimated"); got != 540.00 {
		t.Errorf("budget_estimated = %v, want 540.00", got)
	}

	orders, _ := app.FindRecordsByFilter("service_orders", "quote = {:q}", "", 0, 0,
		map[string]any{"q": quote.Id})
	if len(orders) != 1 {
		t.Fatalf("expected one service order, got %d", len(orders))
	}
	if got := orders[0].GetString("status"); got != services.OSStatusAwaitingMaterials {
		t.Errorf("service order status = %q, want %q", got, services.OSStatusAwaitingMaterials)
	}
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marcenaria/services"
	"marcenaria/testhelpers"
)

func TestHandleQuoteDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Maria Souza")
	quote := testhelpers.CreateTestQuote(t, app, customer.Id, 1, services.QuoteStatusDraft, 100)
	testhelpers.CreateTestQuoteItem(t, app, quote.Id, "Armário", 1, 100)

	handler := HandleQuoteDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/finance/quotes/"+quote.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/finance/quotes")

	if _, err := app.FindRecordById("quotes", quote.Id); err == nil {
		t.Error("expected quote to be deleted")
	}
	// items are cascade-deleted with the quote
	items, _ := app.FindRecordsByFilter("quote_items", "quote = {:q}", "", 0, 0,
		map[string]any{"q": quote.Id})
	if len(items) != 0 {
		t.Errorf("expected items to be removed with the quote, got %d", len(items))
	}
}

func TestHandleQuoteDelete_WithServiceOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Cliente X")
	quote := testhelpers.CreateTestQuote(t, app, customer.Id, 1, services.QuoteStatusApproved, 540.00)
	testhelpers.CreateTestServiceOrder(t, app, quote.Id, 1, services.OSStatusAwaitingMaterials)

	handler := HandleQuoteDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/finance/quotes/"+quote.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409 Conflict, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("quotes", quote.Id); err != nil {
		t.Error("quote should not have been deleted")
	}
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marcenaria/services"
	"marcenaria/testhelpers"
)

func TestHandleDashboard_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleDashboard(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Receita Aprovada", "Taxa de Conversão", "R$ 0,00")
}

func TestHandleDashboard_WithQuotes(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Maria Souza")
	testhelpers.CreateTestQuote(t, app, customer.Id, 1, services.QuoteStatusApproved, 540.00)
	testhelpers.CreateTestQuote(t, app, customer.Id, 2, services.QuoteStatusSent, 300.00)

	handler := HandleDashboard(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "R$ 540,00", "Maria Souza")
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marcenaria/services"
	"marcenaria/testhelpers"
)

func TestHandleReport_StatusFilter(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Maria Souza")
	testhelpers.CreateTestQuote(t, app, customer.Id, 1, services.QuoteStatusApproved, 540.00)
	testhelpers.CreateTestQuote(t, app, customer.Id, 2, services.QuoteStatusRejected, 900.00)

	handler := HandleReport(app)

	req := httptest.NewRequest(http.MethodGet,
		"/reports?from=2000-01-01&to=2099-12-31&status=Aprovado", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "R$ 540,00")
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestHandleReport_InvalidStatusIgnored(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Maria Souza")
	testhelpers.CreateTestQuote(t, app, customer.Id, 1, services.QuoteStatusDraft, 120.00)

	handler := HandleReport(app)

	req := httptest.NewRequest(http.MethodGet,
		"/reports?from=2000-01-01&to=2099-12-31&status=Qualquer", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// Unknown status falls back to "all", so the draft still shows up.
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "R$ 120,00")
}

func TestHandleReport_ShowsConversion(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Maria Souza")
	testhelpers.CreateTestQuote(t, app, customer.Id, 1, services.QuoteStatusApproved, 540.00)
	testhelpers.CreateTestQuote(t, app, customer.Id, 2, services.QuoteStatusRejected, 900.00)

	handler := HandleReport(app)

	req := httptest.NewRequest(http.MethodGet,
		"/reports?from=2000-01-01&to=2099-12-31", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// 1 approved out of 2 quotes
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Taxa de Conversão", "50%")
}

func TestHandleReportExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Maria Souza")
	testhelpers.CreateTestQuote(t, app, customer.Id, 1, services.QuoteStatusApproved, 540.00)

	handler := HandleReportExportExcel(app)

	req := httptest.NewRequest(http.MethodGet,
		"/reports/export?from=2000-01-01&to=2099-12-31", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got == "" {
		t.Error("expected a Content-Disposition header for the download")
	}
	if rec.Body.Len() == 0 {
		t.Error("expected a non-empty workbook")
	}
}

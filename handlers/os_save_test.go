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

func TestHandleOSSave_UpdatesStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Cliente X")
	quote := testhelpers.CreateTestQuote(t, app, customer.Id, 1, services.QuoteStatusApproved, 540.00)
	order := testhelpers.CreateTestServiceOrder(t, app, quote.Id, 1, services.OSStatusReady)

	handler := HandleOSSave(app)

	form := url.Values{}
	form.Set("status", services.OSStatusInstalled)
	form.Set("responsible", "Carlos")

	req := httptest.NewRequest(http.MethodPost, "/finance/os/"+order.Id+"/save",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", order.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/finance/os/"+order.Id)

	updated, err := app.FindRecordById("service_orders", order.Id)
	if err != nil {
		t.Fatalf("service order not found after save: %v", err)
	}
	if got := updated.GetString("status"); got != "Instalado" {
		t.Errorf("status = %q, want Instalado", got)
	}
	if got := updated.GetString("responsible"); got != "Carlos" {
		t.Errorf("responsible = %q, want Carlos", got)
	}
	if got := updated.GetInt("os_number"); got != order.GetInt("os_number") {
		t.Errorf("os_number changed: %d -> %d", order.GetInt("os_number"), got)
	}
	if got := updated.GetString("quote"); got != quote.Id {
		t.Errorf("quote link changed: %q -> %q", quote.Id, got)
	}
}

func TestHandleOSSave_InvalidStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Cliente X")
	quote := testhelpers.CreateTestQuote(t, app, customer.Id, 1, services.QuoteStatusApproved, 540.00)
	order := testhelpers.CreateTestServiceOrder(t, app, quote.Id, 1, services.OSStatusAwaitingMaterials)

	handler := HandleOSSave(app)

	form := url.Values{}
	form.Set("status", "Finalizado")

	req := httptest.NewRequest(http.MethodPost, "/finance/os/"+order.Id+"/save",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", order.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	updated, _ := app.FindRecordById("service_orders", order.Id)
	if got := updated.GetString("status"); got != services.OSStatusAwaitingMaterials {
		t.Errorf("status = %q, should be unchanged", got)
	}
}

func TestHandleOSSave_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleOSSave(app)

	form := url.Values{}
	form.Set("status", services.OSStatusReady)

	req := httptest.NewRequest(http.MethodPost, "/finance/os/missing/save",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

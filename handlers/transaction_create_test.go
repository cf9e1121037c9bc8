package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"marcenaria/testhelpers"
)

func TestHandleTransactionSave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleTransactionSave(app)

	form := url.Values{}
	form.Set("type", "expense")
	form.Set("category", "Material")
	form.Set("description", "Compra de MDF")
	form.Set("amount", "450.90")
	form.Set("date", "2025-09-01")

	req := httptest.NewRequest(http.MethodPost, "/finance/transactions",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/finance")

	records, err := app.FindRecordsByFilter("transactions", "description = {:d}", "", 1, 0,
		map[string]any{"d": "Compra de MDF"})
	if err != nil || len(records) == 0 {
		t.Fatal("expected transaction to be created")
	}
	if got := records[0].GetFloat("amount"); got != 450.90 {
		t.Errorf("amount = %v, want 450.90", got)
	}
	if got := records[0].GetString("type"); got != "expense" {
		t.Errorf("type = %q, want expense", got)
	}
}

func TestHandleTransactionSave_InvalidAmount(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleTransactionSave(app)

	tests := []struct {
		name   string
		amount string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("type", "income")
			form.Set("description", "Teste")
			form.Set("amount", tt.amount)
			form.Set("date", "2025-09-01")

			req := httptest.NewRequest(http.MethodPost, "/finance/transactions",
				strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("HX-Request", "true")
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
		})
	}
}

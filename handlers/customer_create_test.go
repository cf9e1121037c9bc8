package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"marcenaria/testhelpers"
)

func TestHandleCustomerCreate_GET(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerCreate(app)

	req := httptest.NewRequest(http.MethodGet, "/customers/new", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Novo Cliente", "Origem", "WhatsApp")
}

func TestHandleCustomerSave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerSave(app)

	form := url.Values{}
	form.Set("name", "Maria Souza")
	form.Set("phone", "11 91234-5678")
	form.Set("origin", "Instagram")
	form.Set("status", "Lead")

	req := httptest.NewRequest(http.MethodPost, "/customers",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/customers")

	records, err := app.FindRecordsByFilter("customers", "name = {:name}", "", 1, 0,
		map[string]any{"name": "Maria Souza"})
	if err != nil || len(records) == 0 {
		t.Fatal("expected customer to be created in database")
	}
	if got := records[0].GetString("origin"); got != "Instagram" {
		t.Errorf("origin = %q, want Instagram", got)
	}
}

func TestHandleCustomerSave_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerSave(app)

	form := url.Values{}
	form.Set("name", "")
	form.Set("phone", "11 91234-5678")

	req := httptest.NewRequest(http.MethodPost, "/customers",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// Should re-render the form, not redirect
	if rec.Header().Get("HX-Redirect") != "" {
		t.Error("expected no HX-Redirect for validation error")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Nome é obrigatório")
}

func TestHandleCustomerSave_FieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantMsg string
	}{
		{"short name", "name", "Jo", "Nome deve ter ao menos 3 caracteres"},
		{"short phone", "phone", "1234", "Telefone deve ter ao menos 10 dígitos"},
		{"bad email", "email", "nao-e-email", "E-mail inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			handler := HandleCustomerSave(app)

			form := url.Values{}
			form.Set("name", "Maria Souza")
			form.Set(tt.field, tt.value)

			req := httptest.NewRequest(http.MethodPost, "/customers",
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
			testhelpers.AssertHTMLContains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"marcenaria/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCustomer creates a customer record with the given name and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("phone", "11 91234-5678")
	record.Set("origin", "WhatsApp")
	record.Set("status", "Lead")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestMaterial creates a catalog material and returns it.
func CreateTestMaterial(t *testing.T, app *pocketbase.PocketBase, name string, costPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("materials")
	if err != nil {
		t.Fatalf("failed to find materials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("category", "chapas")
	record.Set("unit", "m2")
	record.Set("cost_price", costPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test material: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote for a customer and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, customerID string, number int, status string, total float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	record.Set("quote_number", number)
	record.Set("status", status)
	record.Set("discount_type", "R$")
	record.Set("total", total)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteItem creates a line item on a quote and returns it.
func CreateTestQuoteItem(t *testing.T, app *pocketbase.PocketBase, quoteID, description string, quantity, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		t.Fatalf("failed to find quote_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("description", description)
	record.Set("quantity", quantity)
	record.Set("unit_price", unitPrice)
	record.Set("subtotal", quantity*unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote item: %v", err)
	}

	return record
}

// CreateTestServiceOrder creates a service order tied to a quote and returns it.
func CreateTestServiceOrder(t *testing.T, app *pocketbase.PocketBase, quoteID string, osNumber int, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("service_orders")
	if err != nil {
		t.Fatalf("failed to find service_orders collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("os_number", osNumber)
	record.Set("status", status)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test service order: %v", err)
	}

	return record
}

// CreateTestVisit creates a technical visit for a customer and returns it.
func CreateTestVisit(t *testing.T, app *pocketbase.PocketBase, customerID, scheduledDate, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("technical_visits")
	if err != nil {
		t.Fatalf("failed to find technical_visits collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	record.Set("scheduled_date", scheduledDate)
	record.Set("status", status)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test visit: %v", err)
	}

	return record
}

// CreateTestTransaction creates a ledger entry and returns it.
func CreateTestTransaction(t *testing.T, app *pocketbase.PocketBase, txType, category string, amount float64, date string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("transactions")
	if err != nil {
		t.Fatalf("failed to find transactions collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("type", txType)
	record.Set("category", category)
	record.Set("description", "Lançamento de teste")
	record.Set("amount", amount)
	record.Set("date", date)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test transaction: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// QuoteSaveInput carries everything the quote editor submits.
type QuoteSaveInput struct {
	QuoteID           string // empty for a new quote
	OwnerID           string
	CustomerID        string
	Status            string
	Discount          float64
	DiscountType      string
	PaymentConditions string
	Notes             string
	Items             []QuoteItemInput
}

// QuoteSaveResult reports what SaveQuote persisted.
type QuoteSaveResult struct {
	QuoteID     string
	QuoteNumber int
	Totals      QuoteTotals
}

// SaveQuote persists a quote and its items as one transaction: header
// upsert, full item replace, and (when the saved status is approved) the
// derived project and service order. Items are deleted and reinserted
// rather than diffed, so whatever the editor shows is exactly what ends up
// stored. Any failure rolls the whole save back.
func SaveQuote(app core.App, input QuoteSaveInput) (QuoteSaveResult, error) {
	var result QuoteSaveResult

	totals := CalcQuoteTotals(input.Items, input.Discount, input.DiscountType)
	result.Totals = totals

	err := app.RunInTransaction(func(tx core.App) error {
		quote, err := upsertQuoteHeader(tx, input, totals)
		if err != nil {
			return err
		}
		result.QuoteID = quote.Id
		result.QuoteNumber = quote.GetInt("quote_number")

		if err := replaceQuoteItems(tx, quote.Id, input.Items); err != nil {
			return err
		}

		if input.Status == QuoteStatusApproved {
			return DeriveRecordsForApproval(tx, input.OwnerID, quote.Id, input.CustomerID, totals.Total)
		}
		return nil
	})
	if err != nil {
		return QuoteSaveResult{}, err
	}
	return result, nil
}

func upsertQuoteHeader(app core.App, input QuoteSaveInput, totals QuoteTotals) (*core.Record, error) {
	var quote *core.Record

	if input.QuoteID != "" {
		existing, err := app.FindRecordById("quotes", input.QuoteID)
		if err != nil {
			return nil, fmt.Errorf("quote %s not found: %w", input.QuoteID, err)
		}
		quote = existing
	} else {
		col, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			return nil, fmt.Errorf("quotes collection not found: %w", err)
		}
		number, err := NextQuoteNumber(app)
		if err != nil {
			return nil, err
		}
		quote = core.NewRecord(col)
		quote.Set("quote_number", number)
	}

	quote.Set("owner", input.OwnerID)
	quote.Set("customer", input.CustomerID)
	quote.Set("status", input.Status)
	quote.Set("discount", input.Discount)
	quote.Set("discount_type", input.DiscountType)
	quote.Set("payment_conditions", input.PaymentConditions)
	quote.Set("notes", input.Notes)
	quote.Set("total", totals.Total)

	// Stamp the first transition into approved; re-saves keep the original
	// timestamp so monthly revenue stays in the month the deal closed.
	if input.Status == QuoteStatusApproved && quote.GetDateTime("approved_at").IsZero() {
		quote.Set("approved_at", types.NowDateTime())
	}

	if err := app.Save(quote); err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}
	return quote, nil
}

func replaceQuoteItems(app core.App, quoteID string, items []QuoteItemInput) error {
	existing, err := app.FindRecordsByFilter(
		"quote_items",
		"quote = {:quoteId}",
		"", 0, 0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return fmt.Errorf("load quote items: %w", err)
	}
	for _, rec := range existing {
		if err := app.Delete(rec); err != nil {
			return fmt.Errorf("delete quote item %s: %w", rec.Id, err)
		}
	}

	col, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		return fmt.Errorf("quote_items collection not found: %w", err)
	}

	for _, item := range items {
		rec := core.NewRecord(col)
		rec.Set("quote", quoteID)
		rec.Set("material", item.MaterialID)
		rec.Set("description", item.Description)
		rec.Set("quantity", item.Quantity)
		rec.Set("unit_price", item.UnitPrice)
		rec.Set("subtotal", ItemSubtotal(item.Quantity, item.UnitPrice))
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("save quote item: %w", err)
		}
	}
	return nil
}

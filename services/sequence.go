package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// NextQuoteNumber returns the next human-readable quote number.
// Numbers are sequential starting at 1 and are assigned once, when the
// quote is first saved.
func NextQuoteNumber(app core.App) (int, error) {
	return nextSequence(app, "quotes", "quote_number")
}

// NextOSNumber returns the next service order number.
func NextOSNumber(app core.App) (int, error) {
	return nextSequence(app, "service_orders", "os_number")
}

// nextSequence scans the collection for the highest value of numberField
// and returns it plus one. Callers that need the number to be race-free
// run inside a transaction, so the scan and the insert are serialized.
func nextSequence(app core.App, collection, numberField string) (int, error) {
	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		return 0, fmt.Errorf("collection %s not found: %w", collection, err)
	}

	records, err := app.FindAllRecords(col)
	if err != nil {
		records = nil
	}

	max := 0
	for _, rec := range records {
		if n := rec.GetInt(numberField); n > max {
			max = n
		}
	}
	return max + 1, nil
}

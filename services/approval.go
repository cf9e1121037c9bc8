package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// ProjectTitleForQuote derives the deterministic project title used by the
// approval automation. The short id keeps the title readable while still
// identifying the source quote.
func ProjectTitleForQuote(quoteID string) string {
	short := quoteID
	if len(short) > 5 {
		short = short[:5]
	}
	return "Projeto do Orçamento #" + short
}

// DeriveRecordsForApproval creates the project and service order for an
// approved quote, once. The existence checks keep re-saves of an approved
// quote from piling up duplicates; the unique indexes on
// projects.source_quote and service_orders.quote close the race two
// concurrent approvals would otherwise win together.
//
// Runs inside the quote save transaction, so a failure here rolls the
// approval back entirely.
func DeriveRecordsForApproval(app core.App, ownerID, quoteID, customerID string, total float64) error {
	if err := ensureProject(app, ownerID, quoteID, customerID, total); err != nil {
		return err
	}
	return ensureServiceOrder(app, ownerID, quoteID)
}

func ensureProject(app core.App, ownerID, quoteID, customerID string, total float64) error {
	existing, err := app.FindFirstRecordByFilter(
		"projects",
		"source_quote = {:quoteId}",
		map[string]any{"quoteId": quoteID},
	)
	if err == nil && existing != nil {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("projects collection not found: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("owner", ownerID)
	record.Set("customer", customerID)
	record.Set("source_quote", quoteID)
	record.Set("title", ProjectTitleForQuote(quoteID))
	record.Set("status", "in_progress")
	record.Set("budget_estimated", total)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("create derived project: %w", err)
	}
	return nil
}

func ensureServiceOrder(app core.App, ownerID, quoteID string) error {
	existing, err := app.FindFirstRecordByFilter(
		"service_orders",
		"quote = {:quoteId}",
		map[string]any{"quoteId": quoteID},
	)
	if err == nil && existing != nil {
		return nil
	}

	osNumber, err := NextOSNumber(app)
	if err != nil {
		return err
	}

	col, err := app.FindCollectionByNameOrId("service_orders")
	if err != nil {
		return fmt.Errorf("service_orders collection not found: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("owner", ownerID)
	record.Set("quote", quoteID)
	record.Set("os_number", osNumber)
	record.Set("status", OSStatusAwaitingMaterials)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("create derived service order: %w", err)
	}
	return nil
}

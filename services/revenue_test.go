package services

import (
	"testing"
	"time"
)

func TestCalcDashboardKPIs(t *testing.T) {
	quotes := []QuoteSummary{
		{Total: 600, Status: QuoteStatusApproved},
		{Total: 400, Status: QuoteStatusApproved},
		{Total: 1000, Status: QuoteStatusSent},
		{Total: 250, Status: QuoteStatusRejected},
	}

	kpis := CalcDashboardKPIs(quotes)

	if kpis.QuoteCount != 4 {
		t.Errorf("QuoteCount = %d, want 4", kpis.QuoteCount)
	}
	if kpis.ApprovedCount != 2 {
		t.Errorf("ApprovedCount = %d, want 2", kpis.ApprovedCount)
	}
	if kpis.TotalRevenue != 1000 {
		t.Errorf("TotalRevenue = %v, want 1000", kpis.TotalRevenue)
	}
	if kpis.ConversionRate != 50 {
		t.Errorf("ConversionRate = %v, want 50", kpis.ConversionRate)
	}
}

func TestCalcDashboardKPIsEmpty(t *testing.T) {
	kpis := CalcDashboardKPIs(nil)
	if kpis.ConversionRate != 0 {
		t.Errorf("ConversionRate = %v, want 0 for no quotes", kpis.ConversionRate)
	}
	if kpis.TotalRevenue != 0 {
		t.Errorf("TotalRevenue = %v, want 0 for no quotes", kpis.TotalRevenue)
	}
}

func TestMonthlyRevenue(t *testing.T) {
	now := time.Date(2025, time.September, 15, 12, 0, 0, 0, time.UTC)

	quotes := []QuoteSummary{
		// lands in September via approved_at
		{Total: 600, Status: QuoteStatusApproved, ApprovedAt: time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)},
		// lands in July via the created fallback
		{Total: 400, Status: QuoteStatusApproved, Created: time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)},
		// never approved, ignored
		{Total: 1000, Status: QuoteStatusSent, Created: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)},
		// approved before the window, ignored
		{Total: 900, Status: QuoteStatusApproved, ApprovedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}

	buckets := MonthlyRevenue(quotes, now, 6)

	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}

	wantLabels := []string{"abr", "mai", "jun", "jul", "ago", "set"}
	for i, want := range wantLabels {
		if buckets[i].Label != want {
			t.Errorf("bucket %d label = %q, want %q", i, buckets[i].Label, want)
		}
	}

	if buckets[3].Revenue != 400 {
		t.Errorf("July revenue = %v, want 400", buckets[3].Revenue)
	}
	if buckets[5].Revenue != 600 {
		t.Errorf("September revenue = %v, want 600", buckets[5].Revenue)
	}
	if buckets[4].Revenue != 0 {
		t.Errorf("August revenue = %v, want 0", buckets[4].Revenue)
	}
}

func TestMonthlyRevenueCrossesYearBoundary(t *testing.T) {
	now := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	quotes := []QuoteSummary{
		{Total: 500, Status: QuoteStatusApproved, ApprovedAt: time.Date(2024, time.December, 5, 0, 0, 0, 0, time.UTC)},
	}

	buckets := MonthlyRevenue(quotes, now, 6)

	if buckets[0].Label != "set" || buckets[0].Year != 2024 {
		t.Errorf("first bucket = %s/%d, want set/2024", buckets[0].Label, buckets[0].Year)
	}
	if buckets[3].Label != "dez" || buckets[3].Revenue != 500 {
		t.Errorf("December bucket = %s revenue %v, want dez revenue 500", buckets[3].Label, buckets[3].Revenue)
	}
}

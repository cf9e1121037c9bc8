package services

import "testing"

func TestCalcReportStats(t *testing.T) {
	quotes := []QuoteSummary{
		{Total: 600, Status: QuoteStatusApproved},
		{Total: 300, Status: QuoteStatusSent},
		{Total: 100, Status: QuoteStatusRejected},
	}

	stats := CalcReportStats(quotes)

	if stats.QuoteCount != 3 {
		t.Errorf("QuoteCount = %d, want 3", stats.QuoteCount)
	}
	if stats.TotalVolume != 1000 {
		t.Errorf("TotalVolume = %v, want 1000", stats.TotalVolume)
	}
	if stats.ApprovedCount != 1 {
		t.Errorf("ApprovedCount = %d, want 1", stats.ApprovedCount)
	}
	if stats.ApprovedTotal != 600 {
		t.Errorf("ApprovedTotal = %v, want 600", stats.ApprovedTotal)
	}
	wantConversion := 100.0 / 3.0
	if stats.Conversion != wantConversion {
		t.Errorf("Conversion = %v, want %v", stats.Conversion, wantConversion)
	}
}

func TestCalcReportStatsEmpty(t *testing.T) {
	stats := CalcReportStats(nil)
	if stats.Conversion != 0 || stats.TotalVolume != 0 {
		t.Errorf("expected zero stats for an empty period, got %+v", stats)
	}
}

package services

// ReportStats summarizes quote activity within a date range.
type ReportStats struct {
	TotalVolume   float64 // sum of all quote totals in the period
	QuoteCount    int
	ApprovedCount int
	ApprovedTotal float64
	Conversion    float64 // percent
}

// CalcReportStats aggregates the quotes already filtered to the reporting
// period.
func CalcReportStats(quotes []QuoteSummary) ReportStats {
	var stats ReportStats
	stats.QuoteCount = len(quotes)
	for _, q := range quotes {
		stats.TotalVolume += q.Total
		if q.Status == QuoteStatusApproved {
			stats.ApprovedCount++
			stats.ApprovedTotal += q.Total
		}
	}
	if stats.QuoteCount > 0 {
		stats.Conversion = float64(stats.ApprovedCount) / float64(stats.QuoteCount) * 100
	}
	return stats
}

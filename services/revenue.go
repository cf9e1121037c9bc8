package services

import "time"

// QuoteSummary is the slice of a quote the dashboard and reports need.
type QuoteSummary struct {
	Total      float64
	Status     string
	ApprovedAt time.Time // zero when never approved
	Created    time.Time
}

// DashboardKPIs are the headline numbers at the top of the dashboard.
type DashboardKPIs struct {
	TotalRevenue   float64 // sum of approved quote totals
	ConversionRate float64 // approved / all quotes, in percent
	QuoteCount     int
	ApprovedCount  int
}

// MonthBucket is one bar of the revenue chart.
type MonthBucket struct {
	Label   string // pt-BR short month name, e.g. "set"
	Year    int
	Month   time.Month
	Revenue float64
}

var monthShortPT = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// CalcDashboardKPIs aggregates approved revenue and the conversion rate
// over every quote.
func CalcDashboardKPIs(quotes []QuoteSummary) DashboardKPIs {
	kpis := DashboardKPIs{QuoteCount: len(quotes)}
	for _, q := range quotes {
		if q.Status == QuoteStatusApproved {
			kpis.ApprovedCount++
			kpis.TotalRevenue += q.Total
		}
	}
	if len(quotes) > 0 {
		kpis.ConversionRate = float64(kpis.ApprovedCount) / float64(len(quotes)) * 100
	}
	return kpis
}

// MonthlyRevenue buckets approved quote totals into the last `months`
// calendar months ending at now. A quote lands in the month it was
// approved, falling back to its creation month for rows approved before
// approved_at existed.
func MonthlyRevenue(quotes []QuoteSummary, now time.Time, months int) []MonthBucket {
	buckets := make([]MonthBucket, 0, months)

	for i := months - 1; i >= 0; i-- {
		ref := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		bucket := MonthBucket{
			Label: monthShortPT[ref.Month()-1],
			Year:  ref.Year(),
			Month: ref.Month(),
		}

		for _, q := range quotes {
			if q.Status != QuoteStatusApproved {
				continue
			}
			at := q.ApprovedAt
			if at.IsZero() {
				at = q.Created
			}
			if at.IsZero() {
				continue
			}
			if at.Year() == bucket.Year && at.Month() == bucket.Month {
				bucket.Revenue += q.Total
			}
		}

		buckets = append(buckets, bucket)
	}
	return buckets
}

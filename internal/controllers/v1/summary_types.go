package v1

import (
	"github.com/flatshare/backend/internal/ledger"
	"github.com/flatshare/backend/internal/types"
	"github.com/shopspring/decimal"
)

// SummaryBucket is the spending total for a single category.
type SummaryBucket struct {
	Category string          `json:"category" example:"food"` // Category, normalized to lower case
	Total    decimal.Decimal `json:"total" example:"133.70"`  // Total spending for the category in decimal currency units
}

type Summary struct {
	Month      types.Month     `json:"month" example:"2026-08"` // The month the summary covers
	Total      decimal.Decimal `json:"total" example:"421.12"`  // Total spending in the month in decimal currency units
	ByCategory []SummaryBucket `json:"byCategory"`              // Per category totals, sorted by total descending
}

func newSummary(month types.Month, summary ledger.Summary) Summary {
	buckets := make([]SummaryBucket, 0, len(summary.ByCategory))
	for _, bucket := range summary.ByCategory {
		buckets = append(buckets, SummaryBucket{
			Category: bucket.Category,
			Total:    fromCents(bucket.Total),
		})
	}

	return Summary{
		Month:      month,
		Total:      fromCents(summary.Total),
		ByCategory: buckets,
	}
}

type SummaryResponse struct {
	Data  *Summary `json:"data"`                                                          // The monthly summary of the flat
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

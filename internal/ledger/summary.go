package ledger

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCategory is the bucket for expenses without a usable category.
const DefaultCategory = "general"

// CategoryBucket is the total spent for one category within a period.
type CategoryBucket struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// Summary is the aggregation of a set of expenses over a period.
type Summary struct {
	Total      int64            `json:"total"`
	ByCategory []CategoryBucket `json:"byCategory"`
}

// Summarize buckets the expenses that occurred within [from, to]
// (inclusive on both ends) by category.
//
// Buckets are sorted by total descending, with the category name
// ascending as tie-break, so repeated calls with the same arguments
// return the same slice in the same order. Timezone handling is the
// caller's concern: the range and the expense dates are compared as
// given.
func Summarize(expenses []Expense, from, to time.Time) Summary {
	totals := make(map[string]int64)

	var total int64
	for _, expense := range expenses {
		if expense.Date.Before(from) || expense.Date.After(to) {
			continue
		}

		total += expense.Amount
		totals[NormalizeCategory(expense.Category)] += expense.Amount
	}

	buckets := make([]CategoryBucket, 0, len(totals))
	for category, sum := range totals {
		buckets = append(buckets, CategoryBucket{Category: category, Total: sum})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Total != buckets[j].Total {
			return buckets[i].Total > buckets[j].Total
		}
		return buckets[i].Category < buckets[j].Category
	})

	return Summary{Total: total, ByCategory: buckets}
}

// NormalizeCategory maps a free-form category string to its canonical
// bucket name: trimmed and lowercased, empty mapping to DefaultCategory.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}

	// cases.Caser is stateful, so a fresh one is used per call to keep
	// this function safe for concurrent use
	return cases.Lower(language.Und).String(category)
}

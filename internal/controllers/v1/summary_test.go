package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/flatshare/backend/internal/controllers/v1"
	"github.com/flatshare/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryURL(flatID uuid.UUID, query string) string {
	return fmt.Sprintf("http://example.com/v1/flats/%s/summary%s", flatID, query)
}

// TestSummaryOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestSummaryOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No flat with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Flat exists", createTestFlat(suite.T(), v1.FlatEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/flats/%s/summary", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET", r.Header().Get("allow"))
			}
		})
	}
}

// TestSummary verifies the per category totals for a month, including
// that expenses of other months are excluded.
func (suite *TestSuiteStandard) TestSummary() {
	household := createTestHousehold(suite.T(), 2)
	payer := household.members[0].Data.ID

	expenses := []v1.ExpenseEditable{
		{Amount: decimal.NewFromFloat(30), Category: "food", Date: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(12.50), Category: "food", Date: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(25), Category: "cleaning", Date: time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)},
		// Other months, must not appear in the summary
		{Amount: decimal.NewFromFloat(100), Category: "food", Date: time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(100), Category: "food", Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, e := range expenses {
		e.FlatID = household.flat.Data.ID
		e.PayerID = payer
		e.ParticipantIDs = household.memberIDs()
		_ = createTestExpense(suite.T(), e)
	}

	r := test.Request(suite.T(), http.MethodGet, summaryURL(household.flat.Data.ID, "?month=2026-08"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "2026-08", response.Data.Month.String())
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromFloat(67.50)), "Total is %s, expected 67.50", response.Data.Total)

	// Categories are sorted by total, descending
	require.Len(suite.T(), response.Data.ByCategory, 2)
	assert.Equal(suite.T(), "food", response.Data.ByCategory[0].Category)
	assert.True(suite.T(), response.Data.ByCategory[0].Total.Equal(decimal.NewFromFloat(42.50)), "Total for food is %s, expected 42.50", response.Data.ByCategory[0].Total)
	assert.Equal(suite.T(), "cleaning", response.Data.ByCategory[1].Category)
	assert.True(suite.T(), response.Data.ByCategory[1].Total.Equal(decimal.NewFromFloat(25)), "Total for cleaning is %s, expected 25", response.Data.ByCategory[1].Total)
}

// TestSummaryDefaultMonth verifies that the summary defaults to the
// current month.
func (suite *TestSuiteStandard) TestSummaryDefaultMonth() {
	household := createTestHousehold(suite.T(), 1)

	// The expense date defaults to the current time
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		FlatID:         household.flat.Data.ID,
		Amount:         decimal.NewFromFloat(5),
		PayerID:        household.members[0].Data.ID,
		ParticipantIDs: household.memberIDs(),
	})

	r := test.Request(suite.T(), http.MethodGet, summaryURL(household.flat.Data.ID, ""), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromFloat(5)), "Total is %s, expected 5", response.Data.Total)
}

// TestSummaryEmpty verifies that a month without expenses has a zero
// total and an empty category list, not a null one.
func (suite *TestSuiteStandard) TestSummaryEmpty() {
	household := createTestHousehold(suite.T(), 1)

	r := test.Request(suite.T(), http.MethodGet, summaryURL(household.flat.Data.ID, "?month=1999-01"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Total.IsZero())
	assert.NotNil(suite.T(), response.Data.ByCategory)
	assert.Len(suite.T(), response.Data.ByCategory, 0)
}

func (suite *TestSuiteStandard) TestSummaryMonthInvalid() {
	household := createTestHousehold(suite.T(), 1)

	tests := []string{"?month=August", "?month=2026-13", "?month=2026-8"}
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, summaryURL(household.flat.Data.ID, tt), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryFlatNotFound() {
	r := test.Request(suite.T(), http.MethodGet, summaryURL(uuid.New(), ""), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

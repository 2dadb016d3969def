package v1_test

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"testing"

	v1 "github.com/flatshare/backend/internal/controllers/v1"
	"github.com/flatshare/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balanceURL(flatID uuid.UUID) string {
	return fmt.Sprintf("http://example.com/v1/flats/%s/balance", flatID)
}

// TestBalanceOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBalanceOptions() {
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
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/flats/%s/balance", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET", r.Header().Get("allow"))
			}
		})
	}
}

// TestBalanceEmptyFlat verifies that a flat without expenses has an
// empty balance, not a null one.
func (suite *TestSuiteStandard) TestBalanceEmptyFlat() {
	household := createTestHousehold(suite.T(), 2)

	r := test.Request(suite.T(), http.MethodGet, balanceURL(household.flat.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	require.Len(suite.T(), response.Data.Totals, 2)
	assert.NotNil(suite.T(), response.Data.Settlements)
	assert.Len(suite.T(), response.Data.Settlements, 0)

	for _, total := range response.Data.Totals {
		assert.True(suite.T(), total.Net.IsZero(), "Net for %s is %s, expected 0", total.Email, total.Net)
	}
}

// TestBalance verifies the net positions and the settlement plan for a
// flat where one member paid for everyone.
func (suite *TestSuiteStandard) TestBalance() {
	household := createTestHousehold(suite.T(), 3)
	payer := household.members[0].Data.ID

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		FlatID:         household.flat.Data.ID,
		Amount:         decimal.NewFromFloat(30),
		PayerID:        payer,
		ParticipantIDs: household.memberIDs(),
	})

	r := test.Request(suite.T(), http.MethodGet, balanceURL(household.flat.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	require.Len(suite.T(), response.Data.Totals, 3)

	// Member IDs are random, look the net positions up by ID
	nets := make(map[uuid.UUID]decimal.Decimal, len(response.Data.Totals))
	for _, total := range response.Data.Totals {
		nets[total.MemberID] = total.Net
	}

	// 30.00 split three ways is 10.00 per head. The payer advanced
	// 20.00 for the other two.
	assert.True(suite.T(), nets[payer].Equal(decimal.NewFromFloat(20)), "Net for the payer is %s, expected 20", nets[payer])
	for _, id := range household.memberIDs()[1:] {
		assert.True(suite.T(), nets[id].Equal(decimal.NewFromFloat(-10)), "Net is %s, expected -10", nets[id])
	}

	require.Len(suite.T(), response.Data.Settlements, 2)
	for _, settlement := range response.Data.Settlements {
		assert.Equal(suite.T(), payer, settlement.To)
		assert.True(suite.T(), settlement.Amount.Equal(decimal.NewFromFloat(10)), "Settlement amount is %s, expected 10", settlement.Amount)
	}
}

// TestBalanceRemainder verifies that split remainders are handed out to
// the first participants in ID order, keeping the flat total at exactly
// zero.
func (suite *TestSuiteStandard) TestBalanceRemainder() {
	household := createTestHousehold(suite.T(), 3)
	payer := household.members[0].Data.ID

	// 1.00 split three ways: 34 cents for the lowest member ID, 33 for
	// the other two
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		FlatID:         household.flat.Data.ID,
		Amount:         decimal.NewFromFloat(1),
		PayerID:        payer,
		ParticipantIDs: household.memberIDs(),
	})

	ids := household.memberIDs()
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	shares := map[uuid.UUID]decimal.Decimal{
		ids[0]: decimal.NewFromFloat(0.34),
		ids[1]: decimal.NewFromFloat(0.33),
		ids[2]: decimal.NewFromFloat(0.33),
	}

	r := test.Request(suite.T(), http.MethodGet, balanceURL(household.flat.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)

	sum := decimal.Zero
	for _, total := range response.Data.Totals {
		expected := shares[total.MemberID].Neg()
		if total.MemberID == payer {
			expected = expected.Add(decimal.NewFromFloat(1))
		}

		assert.True(suite.T(), total.Net.Equal(expected), "Net for %s is %s, expected %s", total.MemberID, total.Net, expected)
		sum = sum.Add(total.Net)
	}

	assert.True(suite.T(), sum.IsZero(), "Sum of all net positions is %s, expected 0", sum)
}

func (suite *TestSuiteStandard) TestBalanceFlatNotFound() {
	r := test.Request(suite.T(), http.MethodGet, balanceURL(uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

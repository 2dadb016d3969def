package ledger

import "github.com/google/uuid"

// Transfer is a single point-to-point payment of a settlement plan.
type Transfer struct {
	From   uuid.UUID `json:"from"`
	To     uuid.UUID `json:"to"`
	Amount int64     `json:"amount"` // minor units, always positive
}

// position is one side of an open debt while planning.
type position struct {
	memberID  uuid.UUID
	magnitude int64
}

// PlanSettlement converts net balances into a list of transfers that
// drives every balance to exactly zero.
//
// The algorithm is greedy largest-first: the creditor and the debtor
// with the largest remaining magnitudes are matched and the smaller
// magnitude is transferred between them, dropping whichever side
// reaches zero. Ties are broken by the lower member ID so the plan is
// deterministic. Greedy matching does not always find the globally
// minimal number of transfers, but it emits at most one transfer less
// than the number of members with a nonzero balance.
//
// Balances that do not sum to zero are the caller's bug; the plan then
// settles as much as one side allows and stops.
func PlanSettlement(balances []Balance) []Transfer {
	var creditors, debtors []position
	for _, balance := range balances {
		switch {
		case balance.Net > 0:
			creditors = append(creditors, position{balance.MemberID, balance.Net})
		case balance.Net < 0:
			debtors = append(debtors, position{balance.MemberID, -balance.Net})
		}
	}

	transfers := make([]Transfer, 0)
	for len(creditors) > 0 && len(debtors) > 0 {
		ci := largest(creditors)
		di := largest(debtors)

		amount := creditors[ci].magnitude
		if debtors[di].magnitude < amount {
			amount = debtors[di].magnitude
		}

		transfers = append(transfers, Transfer{
			From:   debtors[di].memberID,
			To:     creditors[ci].memberID,
			Amount: amount,
		})

		creditors[ci].magnitude -= amount
		debtors[di].magnitude -= amount

		if creditors[ci].magnitude == 0 {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
		if debtors[di].magnitude == 0 {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}
	}

	return transfers
}

// largest returns the index of the position with the largest magnitude,
// preferring the lower member ID on equal magnitudes.
func largest(positions []position) int {
	best := 0
	for i := 1; i < len(positions); i++ {
		if positions[i].magnitude > positions[best].magnitude {
			best = i
			continue
		}
		if positions[i].magnitude == positions[best].magnitude && lessID(positions[i].memberID, positions[best].memberID) {
			best = i
		}
	}
	return best
}

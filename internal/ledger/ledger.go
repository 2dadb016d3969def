// Package ledger implements the expense ledger and settlement engine.
//
// All functions in this package are pure: they read their arguments,
// allocate fresh state and return. Amounts are signed integers in the
// minor unit of the flat's currency (e.g. cents), so no floating point
// arithmetic happens anywhere in the engine.
package ledger

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Member is a roster entry. Only the ID is used for computation, the
// remaining fields are carried so that callers can map IDs back to
// people without a second lookup.
type Member struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Expense is a single shared expense as the engine sees it.
type Expense struct {
	ID             uuid.UUID
	Amount         int64 // minor units, must be positive
	PayerID        uuid.UUID
	ParticipantIDs []uuid.UUID
	Category       string
	Date           time.Time
}

// Balance is the signed net position of a member. Positive means the
// member is owed money, negative means the member owes money.
type Balance struct {
	MemberID uuid.UUID `json:"memberId"`
	Net      int64     `json:"net"`
}

// Policy selects how ComputeBalances treats invalid expenses.
type Policy int

const (
	// SkipInvalid reports invalid expenses but keeps processing the batch.
	SkipInvalid Policy = iota
	// AbortOnInvalid stops at the first invalid expense.
	AbortOnInvalid
)

// ComputeBalances aggregates the net balance for every member of the
// roster over the given expenses.
//
// Members without any activity are included with a net of zero. The sum
// of all returned nets is exactly zero for any batch of valid expenses,
// and the result is independent of the order of the expenses slice.
// Balances are returned sorted by member ID so that identical inputs
// produce identical outputs.
//
// Invalid expenses never contribute to any balance. With SkipInvalid
// they are collected into the returned error slice and the rest of the
// batch is processed; with AbortOnInvalid the first error is returned
// alone and the balances are nil.
func ComputeBalances(members []Member, expenses []Expense, policy Policy) ([]Balance, []error) {
	roster := make(map[uuid.UUID]bool, len(members))
	net := make(map[uuid.UUID]int64, len(members))
	for _, member := range members {
		roster[member.ID] = true
		net[member.ID] = 0
	}

	var errs []error
	for _, expense := range expenses {
		err := validate(expense, roster)
		if err != nil {
			if policy == AbortOnInvalid {
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}

		net[expense.PayerID] += expense.Amount
		for participant, share := range apportion(expense.Amount, expense.ParticipantIDs) {
			net[participant] -= share
		}
	}

	balances := make([]Balance, 0, len(members))
	for id, n := range net {
		balances = append(balances, Balance{MemberID: id, Net: n})
	}
	sort.Slice(balances, func(i, j int) bool {
		return lessID(balances[i].MemberID, balances[j].MemberID)
	})

	return balances, errs
}

// apportion splits amount into one integer share per participant such
// that the shares sum to amount exactly.
//
// Every participant gets the floor share, then the remaining minor
// units are handed out one each to the first participants in ID order.
// The participant order of the input is irrelevant.
func apportion(amount int64, participantIDs []uuid.UUID) map[uuid.UUID]int64 {
	sorted := make([]uuid.UUID, len(participantIDs))
	copy(sorted, participantIDs)
	sort.Slice(sorted, func(i, j int) bool {
		return lessID(sorted[i], sorted[j])
	})

	count := int64(len(sorted))
	share := amount / count
	remainder := amount - share*count

	shares := make(map[uuid.UUID]int64, len(sorted))
	for i, id := range sorted {
		s := share
		if int64(i) < remainder {
			s++
		}
		shares[id] = s
	}

	return shares
}

// lessID orders UUIDs by their byte representation.
func lessID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

package v1

import (
	"github.com/flatshare/backend/internal/ledger"
	"github.com/flatshare/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceTotal is the net position of a single member.
//
// The net amount is positive for members the flat owes money to and
// negative for members who owe money.
type BalanceTotal struct {
	MemberID uuid.UUID       `json:"memberId" example:"d1e4613a-9e20-464d-9c7d-d3e0b2762b8a"` // ID of the member
	Email    string          `json:"email" example:"ellen@example.com"`                       // Email of the member
	Net      decimal.Decimal `json:"net" example:"-13.37"`                                    // Net position in decimal currency units
}

// BalanceSettlement is a single transfer of the settlement plan.
type BalanceSettlement struct {
	From   uuid.UUID       `json:"from" example:"d1e4613a-9e20-464d-9c7d-d3e0b2762b8a"` // ID of the member who pays
	To     uuid.UUID       `json:"to" example:"a6e4613a-1d2e-4b04-9ba7-772e5ab9d0ce"`   // ID of the member who receives
	Amount decimal.Decimal `json:"amount" example:"13.37"`                              // Amount in decimal currency units, always positive
}

type Balance struct {
	Totals      []BalanceTotal      `json:"totals"`      // Net position per member, sorted by member ID
	Settlements []BalanceSettlement `json:"settlements"` // Transfers that settle all debts
}

func newBalance(members []models.Member, balances []ledger.Balance, transfers []ledger.Transfer) Balance {
	emails := make(map[uuid.UUID]string, len(members))
	for _, member := range members {
		emails[member.ID] = member.Email
	}

	totals := make([]BalanceTotal, 0, len(balances))
	for _, balance := range balances {
		totals = append(totals, BalanceTotal{
			MemberID: balance.MemberID,
			Email:    emails[balance.MemberID],
			Net:      fromCents(balance.Net),
		})
	}

	settlements := make([]BalanceSettlement, 0, len(transfers))
	for _, transfer := range transfers {
		settlements = append(settlements, BalanceSettlement{
			From:   transfer.From,
			To:     transfer.To,
			Amount: fromCents(transfer.Amount),
		})
	}

	return Balance{
		Totals:      totals,
		Settlements: settlements,
	}
}

type BalanceResponse struct {
	Data  *Balance `json:"data"`                                                          // The balance of the flat
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

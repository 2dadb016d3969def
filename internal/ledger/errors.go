package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount    = errors.New("the expense amount must be positive")
	ErrNoParticipants       = errors.New("the expense must have at least one participant")
	ErrDuplicateParticipant = errors.New("the expense lists a participant more than once")
	ErrUnknownPayer         = errors.New("the payer is not a member of the flat")
	ErrUnknownParticipant   = errors.New("a participant is not a member of the flat")
)

// ValidationError marks a single expense as unusable for balance
// computation. It wraps one of the sentinel errors above.
type ValidationError struct {
	ExpenseID uuid.UUID
	Err       error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("expense %s: %s", e.ExpenseID, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// validate checks a single expense against the roster.
//
// The engine never coerces invalid data: a non-positive amount is not
// clamped and an unknown member is not defaulted, the expense is
// rejected as a whole.
func validate(expense Expense, roster map[uuid.UUID]bool) error {
	fail := func(err error) error {
		return ValidationError{ExpenseID: expense.ID, Err: err}
	}

	if expense.Amount <= 0 {
		return fail(ErrNonPositiveAmount)
	}

	if len(expense.ParticipantIDs) == 0 {
		return fail(ErrNoParticipants)
	}

	if !roster[expense.PayerID] {
		return fail(ErrUnknownPayer)
	}

	seen := make(map[uuid.UUID]bool, len(expense.ParticipantIDs))
	for _, id := range expense.ParticipantIDs {
		if !roster[id] {
			return fail(ErrUnknownParticipant)
		}
		if seen[id] {
			return fail(ErrDuplicateParticipant)
		}
		seen[id] = true
	}

	return nil
}

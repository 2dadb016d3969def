package models

import (
	"strings"
	"time"

	"github.com/flatshare/backend/internal/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense represents a shared expense paid by one member and split
// between the participants.
//
// The amount is stored in integer minor units (cents). Conversion from
// and to decimal currency units happens at the API boundary only.
type Expense struct {
	DefaultModel
	Flat         Flat `json:"-"`
	FlatID       uuid.UUID
	Title        string
	Note         string
	Amount       int64 `gorm:"check:amount_positive,amount > 0"`
	Category     string
	Date         time.Time
	Payer        Member `json:"-"`
	PayerID      uuid.UUID
	Participants []Member `gorm:"many2many:expense_participants"`
}

// AfterFind updates the expense date to use UTC as
// timezone, not +0000. Yes, this is different.
func (e *Expense) AfterFind(_ *gorm.DB) (err error) {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// BeforeSave normalizes the expense.
//
// The category is stored in its canonical form so that all aggregation
// can compare categories byte for byte.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Note = strings.TrimSpace(e.Note)
	e.Category = ledger.NormalizeCategory(e.Category)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	// The check constraint would catch this as well, checking here
	// gives the caller the sentinel error directly
	if e.Amount <= 0 {
		return ErrExpenseAmountNotPositive
	}

	toSave := tx.Statement.Dest.(*Expense)
	return e.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the expense before
// committing an update to the database.
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	if !tx.Statement.Changed("FlatID") && !tx.Statement.Changed("PayerID") {
		return nil
	}

	toSave := tx.Statement.Dest.(Expense)

	flatID := e.FlatID
	if tx.Statement.Changed("FlatID") {
		flatID = toSave.FlatID
	}

	payerID := e.PayerID
	if tx.Statement.Changed("PayerID") {
		payerID = toSave.PayerID
	}

	err := tx.First(&Flat{}, flatID).Error
	if err != nil {
		return err
	}

	var payer Member
	err = tx.First(&payer, payerID).Error
	if err != nil {
		return err
	}
	if payer.FlatID != flatID {
		return ErrExpensePayerInvalid
	}

	return nil
}

// checkIntegrity verifies references to other resources.
//
// The payer and every participant must be members of the flat the
// expense belongs to. Invalid references are rejected, never defaulted.
func (e *Expense) checkIntegrity(tx *gorm.DB, toSave Expense) error {
	err := tx.First(&Flat{}, toSave.FlatID).Error
	if err != nil {
		return err
	}

	var payer Member
	err = tx.First(&payer, toSave.PayerID).Error
	if err != nil {
		return err
	}
	if payer.FlatID != toSave.FlatID {
		return ErrExpensePayerInvalid
	}

	if len(toSave.Participants) == 0 {
		return ErrExpenseNoParticipants
	}

	seen := make(map[uuid.UUID]bool, len(toSave.Participants))
	for _, participant := range toSave.Participants {
		if seen[participant.ID] {
			return ErrExpenseParticipantInvalid
		}
		seen[participant.ID] = true

		var member Member
		err = tx.First(&member, participant.ID).Error
		if err != nil {
			return err
		}
		if member.FlatID != toSave.FlatID {
			return ErrExpenseParticipantInvalid
		}
	}

	return nil
}

// ReplaceParticipants validates and replaces the participants of the
// expense. Passing an empty slice is rejected since every expense needs
// at least one participant.
func (e *Expense) ReplaceParticipants(db *gorm.DB, participants []Member) error {
	toSave := *e
	toSave.Participants = participants

	err := e.checkIntegrity(db, toSave)
	if err != nil {
		return err
	}

	err = db.Model(e).Association("Participants").Replace(participants)
	if err != nil {
		return err
	}

	e.Participants = participants
	return nil
}

// Ledger returns the engine representation of the expense.
// Participants must be loaded.
func (e Expense) Ledger() ledger.Expense {
	participantIDs := make([]uuid.UUID, 0, len(e.Participants))
	for _, participant := range e.Participants {
		participantIDs = append(participantIDs, participant.ID)
	}

	return ledger.Expense{
		ID:             e.ID,
		Amount:         e.Amount,
		PayerID:        e.PayerID,
		ParticipantIDs: participantIDs,
		Category:       e.Category,
		Date:           e.Date,
	}
}

package models

import (
	"strings"

	"github.com/flatshare/backend/internal/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member represents a person living in a flat.
type Member struct {
	DefaultModel
	Flat   Flat      `json:"-"`
	FlatID uuid.UUID `gorm:"uniqueIndex:member_flat_id_email"`
	Name   string
	Email  string `gorm:"uniqueIndex:member_flat_id_email"`
}

// BeforeSave normalizes the member data.
//
// Emails are compared case-insensitively everywhere, so they are
// stored lowercased.
func (m *Member) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))

	return nil
}

// BeforeCreate validates the member.
//
// The receiver is used instead of tx.Statement.Dest so that the hook
// also works when members are saved as part of an expense's
// participant association, where Dest is a slice.
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	_ = m.DefaultModel.BeforeCreate(tx)

	if m.Email == "" {
		return ErrMemberEmailRequired
	}

	return m.checkIntegrity(tx, *m)
}

// BeforeUpdate verifies the state of the member before
// committing an update to the database.
func (m *Member) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("FlatID") {
		toSave := tx.Statement.Dest.(Member)
		return m.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (m *Member) checkIntegrity(tx *gorm.DB, toSave Member) error {
	return tx.First(&Flat{}, toSave.FlatID).Error
}

// BeforeDelete blocks deletion while the member is referenced by an
// expense. Expenses are immutable once recorded, removing their payer
// or a participant would change them retroactively.
//
// Soft-deleted expenses do not block, they are already out of every
// balance.
func (m *Member) BeforeDelete(tx *gorm.DB) error {
	// Batch deletes have no ID, the cleanup endpoint handles
	// the ordering itself
	if m.ID == uuid.Nil {
		return nil
	}

	var count int64
	err := tx.Model(&Expense{}).Where("payer_id = ?", m.ID).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrMemberReferenced
	}

	err = tx.Model(&Expense{}).
		Joins("JOIN expense_participants ON expense_participants.expense_id = expenses.id").
		Where("expense_participants.member_id = ?", m.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrMemberReferenced
	}

	return nil
}

// Ledger returns the engine representation of the member.
func (m Member) Ledger() ledger.Member {
	return ledger.Member{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
	}
}

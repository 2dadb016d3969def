package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents a chore within a flat, optionally assigned to a
// member.
type Task struct {
	DefaultModel
	Flat       Flat `json:"-"`
	FlatID     uuid.UUID
	Title      string
	Note       string
	Assignee   *Member `json:"-"`
	AssigneeID *uuid.UUID
	Done       bool
}

// BeforeSave trims whitespace from all strings.
func (t *Task) BeforeSave(_ *gorm.DB) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Note = strings.TrimSpace(t.Note)

	return nil
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.Title == "" {
		return ErrTaskTitleRequired
	}

	toSave := tx.Statement.Dest.(*Task)
	return t.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the task before
// committing an update to the database.
func (t *Task) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("FlatID") || tx.Statement.Changed("AssigneeID") {
		toSave := tx.Statement.Dest.(Task)
		if toSave.FlatID == uuid.Nil {
			toSave.FlatID = t.FlatID
		}
		return t.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (t *Task) checkIntegrity(tx *gorm.DB, toSave Task) error {
	err := tx.First(&Flat{}, toSave.FlatID).Error
	if err != nil {
		return err
	}

	if toSave.AssigneeID == nil {
		return nil
	}

	var assignee Member
	err = tx.First(&assignee, *toSave.AssigneeID).Error
	if err != nil {
		return err
	}
	if assignee.FlatID != toSave.FlatID {
		return ErrTaskAssigneeInvalid
	}

	return nil
}

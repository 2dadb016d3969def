package models

import (
	"strings"

	"gorm.io/gorm"
)

// Flat represents a shared flat: the workspace that members, expenses
// and tasks belong to.
type Flat struct {
	DefaultModel
	Name string
	Note string
}

// BeforeSave trims whitespace from all strings.
func (f *Flat) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Note = strings.TrimSpace(f.Note)

	return nil
}

func (f *Flat) BeforeCreate(tx *gorm.DB) error {
	_ = f.DefaultModel.BeforeCreate(tx)

	if f.Name == "" {
		return ErrFlatNameRequired
	}

	return nil
}

// Members returns the roster of the flat, sorted by email.
func (f Flat) Members(db *gorm.DB) ([]Member, error) {
	var members []Member
	err := db.Where(Member{FlatID: f.ID}).Order("email ASC").Find(&members).Error
	return members, err
}

// Expenses returns all expenses of the flat with their participants.
func (f Flat) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Preload("Participants").Where(Expense{FlatID: f.ID}).Order("date DESC").Find(&expenses).Error
	return expenses, err
}

// Tasks returns all tasks of the flat.
func (f Flat) Tasks(db *gorm.DB) ([]Task, error) {
	var tasks []Task
	err := db.Where(Task{FlatID: f.ID}).Order("created_at ASC").Find(&tasks).Error
	return tasks, err
}

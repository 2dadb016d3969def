package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Flat errors
var ErrFlatNameRequired = errors.New("the flat name must be set")

// Member errors
var (
	ErrMemberEmailRequired  = errors.New("the member email must be set")
	ErrMemberEmailNotUnique = errors.New("the member email must be unique for the flat")
	ErrMemberReferenced     = errors.New("the member is the payer or a participant of an expense and cannot be deleted")
)

// Expense errors
var (
	ErrExpenseAmountNotPositive  = errors.New("the expense amount must be positive")
	ErrExpenseNoParticipants     = errors.New("the expense must have at least one participant")
	ErrExpensePayerInvalid       = errors.New("the payer must be a member of the flat the expense belongs to")
	ErrExpenseParticipantInvalid = errors.New("all participants must be members of the flat the expense belongs to")
)

// Task errors
var (
	ErrTaskTitleRequired   = errors.New("the task title must be set")
	ErrTaskAssigneeInvalid = errors.New("the assignee must be a member of the flat the task belongs to")
)

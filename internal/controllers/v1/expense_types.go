package v1

import (
	"fmt"
	"time"

	"github.com/flatshare/backend/internal/models"
	fs_uuid "github.com/flatshare/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	FlatID         uuid.UUID       `json:"flatId" example:"550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55"`                     // ID of the flat the expense belongs to
	Title          string          `json:"title" example:"Groceries" default:""`                                      // Title of the expense
	Note           string          `json:"note" example:"Weekly shopping at the market" default:""`                   // Notes about the expense
	Amount         decimal.Decimal `json:"amount" example:"14.37" minimum:"0.01" multipleOf:"0.01"`                   // Amount in decimal currency units, converted to integer cents internally
	Category       string          `json:"category" example:"food" default:""`                                        // Category of the expense, normalized to lower case. Empty means "general"
	Date           time.Time       `json:"date" example:"2026-08-15T00:00:00Z"`                                       // Date of the expense. Defaults to the current time
	PayerID        uuid.UUID       `json:"payerId" example:"d1e4613a-9e20-464d-9c7d-d3e0b2762b8a"`                    // ID of the member who paid
	ParticipantIDs []uuid.UUID     `json:"participantIds" example:"d1e4613a-9e20-464d-9c7d-d3e0b2762b8a"`             // IDs of the members the expense is split between
}

// model converts the editable into an expense without participants.
// Participants are loaded and attached by the caller.
func (editable ExpenseEditable) model() (models.Expense, error) {
	cents, err := toCents(editable.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		FlatID:   editable.FlatID,
		Title:    editable.Title,
		Note:     editable.Note,
		Amount:   cents,
		Category: editable.Category,
		Date:     editable.Date,
		PayerID:  editable.PayerID,
	}, nil
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/a6e4613a-1d2e-4b04-9ba7-772e5ab9d0ce"` // The expense itself
	Flat string `json:"flat" example:"https://example.com/api/v1/flats/550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55"`   // The flat the expense belongs to
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(url string, model models.Expense) Expense {
	participantIDs := make([]uuid.UUID, 0, len(model.Participants))
	for _, participant := range model.Participants {
		participantIDs = append(participantIDs, participant.ID)
	}

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			FlatID:         model.FlatID,
			Title:          model.Title,
			Note:           model.Note,
			Amount:         fromCents(model.Amount),
			Category:       model.Category,
			Date:           model.Date,
			PayerID:        model.PayerID,
			ParticipantIDs: participantIDs,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Flat: fmt.Sprintf("%s/v1/flats/%s", url, model.FlatID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	FlatID   fs_uuid.UUID `form:"flat"`                         // By ID of the flat
	PayerID  fs_uuid.UUID `form:"payer"`                        // By ID of the paying member
	Category string       `form:"category" filterField:"false"` // By category, supports glob patterns like "food*"
	Month    string       `form:"month" filterField:"false"`    // By calendar month in YYYY-MM format
	Offset   uint         `form:"offset" filterField:"false"`   // The offset of the first expense returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`    // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		FlatID:  f.FlatID.UUID,
		PayerID: f.PayerID.UUID,
	}
}

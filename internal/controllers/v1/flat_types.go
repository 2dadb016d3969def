package v1

import (
	"fmt"

	"github.com/flatshare/backend/internal/models"
)

// FlatEditable represents all user configurable parameters
type FlatEditable struct {
	Name string `json:"name" example:"Sesamstraße 12" default:""`         // Name of the flat
	Note string `json:"note" example:"The one with the big kitchen" default:""` // Notes about the flat
}

func (editable FlatEditable) model() models.Flat {
	return models.Flat{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type FlatLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/flats/550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55"`          // The flat itself
	Members  string `json:"members" example:"https://example.com/api/v1/flats/550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55/members"`  // Members of this flat
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?flat=550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55"` // Expenses of this flat
	Tasks    string `json:"tasks" example:"https://example.com/api/v1/tasks?flat=550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55"`       // Tasks of this flat
	Balance  string `json:"balance" example:"https://example.com/api/v1/flats/550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55/balance"`  // Who owes whom in this flat
	Summary  string `json:"summary" example:"https://example.com/api/v1/flats/550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55/summary"`  // Monthly spending summary for this flat
}

type Flat struct {
	models.DefaultModel
	FlatEditable
	Links FlatLinks `json:"links"`
}

func newFlat(url string, model models.Flat) Flat {
	return Flat{
		DefaultModel: model.DefaultModel,
		FlatEditable: FlatEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: FlatLinks{
			Self:     fmt.Sprintf("%s/v1/flats/%s", url, model.ID),
			Members:  fmt.Sprintf("%s/v1/flats/%s/members", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?flat=%s", url, model.ID),
			Tasks:    fmt.Sprintf("%s/v1/tasks?flat=%s", url, model.ID),
			Balance:  fmt.Sprintf("%s/v1/flats/%s/balance", url, model.ID),
			Summary:  fmt.Sprintf("%s/v1/flats/%s/summary", url, model.ID),
		},
	}
}

type FlatListResponse struct {
	Data       []Flat      `json:"data"`                                                          // List of flats
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type FlatCreateResponse struct {
	Data  []FlatResponse `json:"data"`                                                          // List of the created flats or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (f *FlatCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	f.Data = append(f.Data, FlatResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FlatResponse struct {
	Data  *Flat   `json:"data"`                                                          // Data for the flat
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FlatQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first flat returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of flats to return. Defaults to 50.
}

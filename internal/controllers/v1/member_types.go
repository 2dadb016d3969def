package v1

import (
	"fmt"

	"github.com/flatshare/backend/internal/models"
	"github.com/google/uuid"
)

// MemberEditable represents all user configurable parameters
type MemberEditable struct {
	Name  string `json:"name" example:"Ellen" default:""`                 // Name of the member
	Email string `json:"email" example:"ellen@example.com" default:""` // Email of the member, unique within the flat
}

func (editable MemberEditable) model(flatID uuid.UUID) models.Member {
	return models.Member{
		FlatID: flatID,
		Name:   editable.Name,
		Email:  editable.Email,
	}
}

type MemberLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/members/d1e4613a-9e20-464d-9c7d-d3e0b2762b8a"` // The member itself
	Flat string `json:"flat" example:"https://example.com/api/v1/flats/550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55"`  // The flat the member lives in
}

type Member struct {
	models.DefaultModel
	MemberEditable
	FlatID uuid.UUID   `json:"flatId" example:"550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55"` // ID of the flat the member lives in
	Links  MemberLinks `json:"links"`
}

func newMember(url string, model models.Member) Member {
	return Member{
		DefaultModel: model.DefaultModel,
		MemberEditable: MemberEditable{
			Name:  model.Name,
			Email: model.Email,
		},
		FlatID: model.FlatID,
		Links: MemberLinks{
			Self: fmt.Sprintf("%s/v1/members/%s", url, model.ID),
			Flat: fmt.Sprintf("%s/v1/flats/%s", url, model.FlatID),
		},
	}
}

type MemberListResponse struct {
	Data  []Member `json:"data"`                                                          // List of members
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MemberCreateResponse struct {
	Data  []MemberResponse `json:"data"`                                                          // List of the created members or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (m *MemberCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MemberResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MemberResponse struct {
	Data  *Member `json:"data"`                                                          // Data for the member
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

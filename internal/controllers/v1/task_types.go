package v1

import (
	"fmt"

	"github.com/flatshare/backend/internal/models"
	fs_uuid "github.com/flatshare/backend/internal/uuid"
	"github.com/google/uuid"
)

// TaskEditable represents all user configurable parameters
type TaskEditable struct {
	FlatID     uuid.UUID  `json:"flatId" example:"550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55"`     // ID of the flat the task belongs to
	Title      string     `json:"title" example:"Take out the trash" default:""`             // Title of the task
	Note       string     `json:"note" example:"Paper bin is picked up on Thursdays" default:""` // Notes about the task
	AssigneeID *uuid.UUID `json:"assigneeId" example:"d1e4613a-9e20-464d-9c7d-d3e0b2762b8a"` // ID of the member the task is assigned to. Can be empty
	Done       bool       `json:"done" example:"false" default:"false"`                      // Is the task done?
}

func (editable TaskEditable) model() models.Task {
	return models.Task{
		FlatID:     editable.FlatID,
		Title:      editable.Title,
		Note:       editable.Note,
		AssigneeID: editable.AssigneeID,
		Done:       editable.Done,
	}
}

type TaskLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/tasks/7e53bb1d-9e20-464d-9c7d-d3e0b2762b8a"` // The task itself
	Flat string `json:"flat" example:"https://example.com/api/v1/flats/550dc9b2-814a-4f0c-a2d8-cbaf2a3a4f55"` // The flat the task belongs to
}

type Task struct {
	models.DefaultModel
	TaskEditable
	Links TaskLinks `json:"links"`
}

func newTask(url string, model models.Task) Task {
	return Task{
		DefaultModel: model.DefaultModel,
		TaskEditable: TaskEditable{
			FlatID:     model.FlatID,
			Title:      model.Title,
			Note:       model.Note,
			AssigneeID: model.AssigneeID,
			Done:       model.Done,
		},
		Links: TaskLinks{
			Self: fmt.Sprintf("%s/v1/tasks/%s", url, model.ID),
			Flat: fmt.Sprintf("%s/v1/flats/%s", url, model.FlatID),
		},
	}
}

type TaskListResponse struct {
	Data       []Task      `json:"data"`                                                          // List of tasks
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TaskCreateResponse struct {
	Data  []TaskResponse `json:"data"`                                                          // List of the created tasks or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TaskCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TaskResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TaskResponse struct {
	Data  *Task   `json:"data"`                                                          // Data for the task
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TaskQueryFilter struct {
	FlatID     fs_uuid.UUID `form:"flat"`                       // By ID of the flat
	AssigneeID fs_uuid.UUID `form:"assignee"`                   // By ID of the assigned member
	Done       bool         `form:"done"`                       // Is the task done?
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first task returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of tasks to return. Defaults to 50.
}

func (f TaskQueryFilter) model() models.Task {
	task := models.Task{
		FlatID: f.FlatID.UUID,
		Done:   f.Done,
	}

	if f.AssigneeID.UUID != uuid.Nil {
		assigneeID := f.AssigneeID.UUID
		task.AssigneeID = &assigneeID
	}

	return task
}

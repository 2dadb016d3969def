package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/flatshare/backend/internal/controllers/v1"
	"github.com/flatshare/backend/internal/models"
	"github.com/flatshare/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTasksOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTasksOptions() {
	tests := []struct {
		name   string
		id     string // path at the tasks endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No task with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Task exists", createTestTask(suite.T(), v1.TaskEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/tasks", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTasksCreate() {
	flat := createTestFlat(suite.T(), v1.FlatEditable{})
	member := createTestMember(suite.T(), flat.Data.ID, v1.MemberEditable{})
	memberID := member.Data.ID

	task := createTestTask(suite.T(), v1.TaskEditable{
		FlatID:     flat.Data.ID,
		Title:      "Take out the trash",
		AssigneeID: &memberID,
	})

	assert.Equal(suite.T(), flat.Data.ID, task.Data.FlatID)
	require.NotNil(suite.T(), task.Data.AssigneeID)
	assert.Equal(suite.T(), memberID, *task.Data.AssigneeID)
	assert.False(suite.T(), task.Data.Done)
}

func (suite *TestSuiteStandard) TestTasksCreateTitleRequired() {
	flat := createTestFlat(suite.T(), v1.FlatEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tasks", []v1.TaskEditable{{FlatID: flat.Data.ID}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TaskCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrTaskTitleRequired.Error(), *response.Data[0].Error)
}

// TestTasksCreateAssigneeInvalid verifies that a task cannot be assigned
// to a member of another flat.
func (suite *TestSuiteStandard) TestTasksCreateAssigneeInvalid() {
	flat := createTestFlat(suite.T(), v1.FlatEditable{})
	outsider := createTestMember(suite.T(), uuid.Nil, v1.MemberEditable{})
	outsiderID := outsider.Data.ID

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tasks", []v1.TaskEditable{{
		FlatID:     flat.Data.ID,
		Title:      "Water the plants",
		AssigneeID: &outsiderID,
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TaskCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrTaskAssigneeInvalid.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestTasksGetFilter() {
	flat := createTestFlat(suite.T(), v1.FlatEditable{})
	member := createTestMember(suite.T(), flat.Data.ID, v1.MemberEditable{})
	memberID := member.Data.ID

	_ = createTestTask(suite.T(), v1.TaskEditable{FlatID: flat.Data.ID, AssigneeID: &memberID})
	_ = createTestTask(suite.T(), v1.TaskEditable{FlatID: flat.Data.ID, Done: true})
	_ = createTestTask(suite.T(), v1.TaskEditable{})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Flat", fmt.Sprintf("flat=%s", flat.Data.ID), 2},
		{"Assignee", fmt.Sprintf("assignee=%s", memberID), 1},
		{"Done", "done=true", 1},
		{"Open", "done=false", 2},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/tasks?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TaskListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTasksUpdateDone() {
	task := createTestTask(suite.T(), v1.TaskEditable{})

	r := test.Request(suite.T(), http.MethodPatch, task.Data.Links.Self, map[string]any{
		"done": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, task.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TaskResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Done)
}

func (suite *TestSuiteStandard) TestTasksDelete() {
	task := createTestTask(suite.T(), v1.TaskEditable{})

	r := test.Request(suite.T(), http.MethodDelete, task.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, task.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

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
)

// TestFlatsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestFlatsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestFlat(t, v1.FlatEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/flats", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.FlatListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestFlatsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestFlatsOptions() {
	tests := []struct {
		name   string
		id     string // path at the flats endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No flat with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Flat exists", createTestFlat(suite.T(), v1.FlatEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/flats", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestFlatsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestFlatsGetSingle() {
	f := createTestFlat(suite.T(), v1.FlatEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing flat", f.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No flat with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/flats/%s", tt.id), "")

			var flat v1.FlatResponse
			test.DecodeResponse(t, &r, &flat)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestFlatsCreateNameRequired() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/flats", []v1.FlatEditable{{Note: "no name"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.FlatCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrFlatNameRequired.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestFlatsCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/flats", `{ Invalid request": Body }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.FlatCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestFlatsGetFilter() {
	_ = createTestFlat(suite.T(), v1.FlatEditable{Name: "Sesame Street 12", Note: "The one with the big kitchen"})
	_ = createTestFlat(suite.T(), v1.FlatEditable{Name: "Mulholland Drive 7"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name single", "name=Sesame", 1},
		{"Name no match", "name=Nonexisting", 0},
		{"Note", "note=kitchen", 1},
		{"Empty note", "note=", 1},
		{"Search", "search=mulholland", 1},
		{"All", "", 2},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/flats?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.FlatListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestFlatsUpdate() {
	f := createTestFlat(suite.T(), v1.FlatEditable{Name: "Old name"})

	r := test.Request(suite.T(), http.MethodPatch, f.Data.Links.Self, map[string]any{
		"name": "New name",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, f.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.FlatResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "New name", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestFlatsDelete() {
	f := createTestFlat(suite.T(), v1.FlatEditable{})

	r := test.Request(suite.T(), http.MethodDelete, f.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, f.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

package v1_test

import (
	"net/http"

	v1 "github.com/flatshare/backend/internal/controllers/v1"
	"github.com/flatshare/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/flats", response.Links.Flats)
	assert.Equal(suite.T(), "http://example.com/v1/expenses", response.Links.Expenses)
	assert.Equal(suite.T(), "http://example.com/v1/tasks", response.Links.Tasks)
}

func (suite *TestSuiteStandard) TestOptionsRoot() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))
}

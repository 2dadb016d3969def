package v1

import (
	"net/http"

	"github.com/flatshare/backend/internal/httputil"
	"github.com/flatshare/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the routes for the v1 API root with
// the RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Flats    string `json:"flats" example:"https://example.com/api/v1/flats"`       // URL of the flat collection endpoint
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"` // URL of the expense collection endpoint
	Tasks    string `json:"tasks" example:"https://example.com/api/v1/tasks"`       // URL of the task collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Flats:    url + "/v1/flats",
			Expenses: url + "/v1/expenses",
			Tasks:    url + "/v1/tasks",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

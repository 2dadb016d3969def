// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/flatshare/backend/internal/httperror"
	"github.com/flatshare/backend/internal/httputil"
	"github.com/flatshare/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the health check routes with
// the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the health of the backend
//
//	@Summary		Get health
//	@Description	Returns the health of the backend, verifying the database connection
//	@Tags			General
//	@Success		200
//	@Failure		500	{object}	httperror.Error
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	c.Status(http.StatusOK)
}

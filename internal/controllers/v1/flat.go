package v1

import (
	"net/http"

	"github.com/flatshare/backend/internal/httputil"
	"github.com/flatshare/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterFlatRoutes registers the routes for flats with
// the RouterGroup that is passed.
func RegisterFlatRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFlatList)
		r.GET("", GetFlats)
		r.POST("", CreateFlats)
	}

	// Flat with ID
	{
		r.OPTIONS("/:id", OptionsFlatDetail)
		r.GET("/:id", GetFlat)
		r.PATCH("/:id", UpdateFlat)
		r.DELETE("/:id", DeleteFlat)
	}

	// Resources of a single flat
	{
		r.OPTIONS("/:id/members", OptionsFlatMembers)
		r.GET("/:id/members", GetFlatMembers)
		r.POST("/:id/members", CreateFlatMembers)

		r.OPTIONS("/:id/balance", OptionsFlatBalance)
		r.GET("/:id/balance", GetFlatBalance)

		r.OPTIONS("/:id/summary", OptionsFlatSummary)
		r.GET("/:id/summary", GetFlatSummary)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Flats
// @Success		204
// @Router			/v1/flats [options]
func OptionsFlatList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Flats
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/flats/{id} [options]
func OptionsFlatDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Flat{})
}

// @Summary		Create flats
// @Description	Creates new flats
// @Tags			Flats
// @Produce		json
// @Success		201		{object}	FlatCreateResponse
// @Failure		400		{object}	FlatCreateResponse
// @Failure		500		{object}	FlatCreateResponse
// @Param			flats	body		[]FlatEditable	true	"Flats"
// @Router			/v1/flats [post]
func CreateFlats(c *gin.Context) {
	var editables []FlatEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FlatCreateResponse{}

	for _, editable := range editables {
		flat := editable.model()

		err = models.DB.Create(&flat).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newFlat(c.GetString(string(models.DBContextURL)), flat)
		r.Data = append(r.Data, FlatResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get flats
// @Description	Returns a list of flats
// @Tags			Flats
// @Produce		json
// @Success		200	{object}	FlatListResponse
// @Failure		500	{object}	FlatListResponse
// @Router			/v1/flats [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first flat returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of flats to return. Defaults to 50."
func GetFlats(c *gin.Context) {
	var filter FlatQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("name ASC")
	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 flats and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var flats []models.Flat
	err := q.Find(&flats).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]Flat, 0, len(flats))
	for _, flat := range flats {
		data = append(data, newFlat(url, flat))
	}

	c.JSON(http.StatusOK, FlatListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get flat
// @Description	Returns a specific flat
// @Tags			Flats
// @Produce		json
// @Success		200	{object}	FlatResponse
// @Failure		400	{object}	FlatResponse
// @Failure		404	{object}	FlatResponse
// @Failure		500	{object}	FlatResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/flats/{id} [get]
func GetFlat(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatResponse{
			Error: &e,
		})
		return
	}

	var flat models.Flat
	err = models.DB.First(&flat, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatResponse{
			Error: &e,
		})
		return
	}

	data := newFlat(c.GetString(string(models.DBContextURL)), flat)
	c.JSON(http.StatusOK, FlatResponse{Data: &data})
}

// @Summary		Update flat
// @Description	Updates an existing flat. Only values to be updated need to be specified.
// @Tags			Flats
// @Accept			json
// @Produce		json
// @Success		200		{object}	FlatResponse
// @Failure		400		{object}	FlatResponse
// @Failure		404		{object}	FlatResponse
// @Failure		500		{object}	FlatResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			flat	body		FlatEditable	true	"Flat"
// @Router			/v1/flats/{id} [patch]
func UpdateFlat(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatResponse{
			Error: &e,
		})
		return
	}

	var flat models.Flat
	err = models.DB.First(&flat, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, FlatEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatResponse{
			Error: &e,
		})
		return
	}

	var data FlatEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&flat).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlatResponse{
			Error: &e,
		})
		return
	}

	r := newFlat(c.GetString(string(models.DBContextURL)), flat)
	c.JSON(http.StatusOK, FlatResponse{Data: &r})
}

// @Summary		Delete flat
// @Description	Deletes a flat
// @Tags			Flats
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/flats/{id} [delete]
func DeleteFlat(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var flat models.Flat
	err = models.DB.First(&flat, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&flat).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

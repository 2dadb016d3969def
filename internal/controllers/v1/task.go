package v1

import (
	"net/http"

	"github.com/flatshare/backend/internal/httputil"
	"github.com/flatshare/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterTaskRoutes registers the routes for tasks with
// the RouterGroup that is passed.
func RegisterTaskRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTaskList)
		r.GET("", GetTasks)
		r.POST("", CreateTasks)
	}

	// Task with ID
	{
		r.OPTIONS("/:id", OptionsTaskDetail)
		r.GET("/:id", GetTask)
		r.PATCH("/:id", UpdateTask)
		r.DELETE("/:id", DeleteTask)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tasks
// @Success		204
// @Router			/v1/tasks [options]
func OptionsTaskList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tasks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tasks/{id} [options]
func OptionsTaskDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Task{})
}

// @Summary		Create tasks
// @Description	Creates new tasks
// @Tags			Tasks
// @Produce		json
// @Success		201		{object}	TaskCreateResponse
// @Failure		400		{object}	TaskCreateResponse
// @Failure		404		{object}	TaskCreateResponse
// @Failure		500		{object}	TaskCreateResponse
// @Param			tasks	body		[]TaskEditable	true	"Tasks"
// @Router			/v1/tasks [post]
func CreateTasks(c *gin.Context) {
	var editables []TaskEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TaskCreateResponse{}

	url := c.GetString(string(models.DBContextURL))

	for _, editable := range editables {
		task := editable.model()

		err = models.DB.Create(&task).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTask(url, task)
		r.Data = append(r.Data, TaskResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get tasks
// @Description	Returns a list of tasks
// @Tags			Tasks
// @Produce		json
// @Success		200	{object}	TaskListResponse
// @Failure		500	{object}	TaskListResponse
// @Router			/v1/tasks [get]
// @Param			flat		query	string	false	"Filter by flat ID"
// @Param			assignee	query	string	false	"Filter by ID of the assigned member"
// @Param			done		query	bool	false	"Is the task done?"
// @Param			offset		query	uint	false	"The offset of the first task returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of tasks to return. Defaults to 50."
func GetTasks(c *gin.Context) {
	var filter TaskQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	q := models.DB.
		Order("datetime(created_at) ASC").
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 tasks and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var tasks []models.Task
	err := q.Find(&tasks).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskListResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		data = append(data, newTask(url, task))
	}

	c.JSON(http.StatusOK, TaskListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get task
// @Description	Returns a specific task
// @Tags			Tasks
// @Produce		json
// @Success		200	{object}	TaskResponse
// @Failure		400	{object}	TaskResponse
// @Failure		404	{object}	TaskResponse
// @Failure		500	{object}	TaskResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tasks/{id} [get]
func GetTask(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskResponse{
			Error: &e,
		})
		return
	}

	var task models.Task
	err = models.DB.First(&task, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskResponse{
			Error: &e,
		})
		return
	}

	data := newTask(c.GetString(string(models.DBContextURL)), task)
	c.JSON(http.StatusOK, TaskResponse{Data: &data})
}

// @Summary		Update task
// @Description	Updates an existing task. Only values to be updated need to be specified.
// @Tags			Tasks
// @Accept			json
// @Produce		json
// @Success		200		{object}	TaskResponse
// @Failure		400		{object}	TaskResponse
// @Failure		404		{object}	TaskResponse
// @Failure		500		{object}	TaskResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			task	body		TaskEditable	true	"Task"
// @Router			/v1/tasks/{id} [patch]
func UpdateTask(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskResponse{
			Error: &e,
		})
		return
	}

	var task models.Task
	err = models.DB.First(&task, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TaskEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskResponse{
			Error: &e,
		})
		return
	}

	var data TaskEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&task).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TaskResponse{
			Error: &e,
		})
		return
	}

	r := newTask(c.GetString(string(models.DBContextURL)), task)
	c.JSON(http.StatusOK, TaskResponse{Data: &r})
}

// @Summary		Delete task
// @Description	Deletes a task
// @Tags			Tasks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tasks/{id} [delete]
func DeleteTask(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var task models.Task
	err = models.DB.First(&task, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&task).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

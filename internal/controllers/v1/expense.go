package v1

import (
	"net/http"
	"strings"

	"github.com/flatshare/backend/internal/httputil"
	"github.com/flatshare/backend/internal/models"
	"github.com/flatshare/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Expense{})
}

// loadParticipants loads the members for the IDs passed in.
func loadParticipants(ids []uuid.UUID) ([]models.Member, error) {
	participants := make([]models.Member, 0, len(ids))
	for _, id := range ids {
		var member models.Member
		err := models.DB.First(&member, id).Error
		if err != nil {
			return nil, err
		}

		participants = append(participants, member)
	}

	return participants, nil
}

// @Summary		Create expenses
// @Description	Creates new expenses
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		404			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	url := c.GetString(string(models.DBContextURL))

	for _, editable := range editables {
		expense, err := editable.model()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		expense.Participants, err = loadParticipants(editable.ParticipantIDs)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&expense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpense(url, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			flat		query	string	false	"Filter by flat ID"
// @Param			payer		query	string	false	"Filter by ID of the paying member"
// @Param			category	query	string	false	"Filter by category, supports glob patterns"
// @Param			month		query	string	false	"Filter by calendar month in YYYY-MM format"
// @Param			offset		query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()

	q := models.DB.
		Preload("Participants").
		Order("datetime(date) DESC, datetime(created_at) DESC").
		Where(&model, queryFields...)

	if slices.Contains(setFields, "Month") {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			e := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{
				Error: &e,
			})
			return
		}

		q = q.Where("date >= ?", month.Start()).Where("date <= ?", month.End())
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	// The category filter supports glob patterns, which sqlite cannot
	// evaluate. Matching and pagination therefore happen here.
	if slices.Contains(setFields, "Category") {
		pattern := strings.ToLower(strings.TrimSpace(filter.Category))

		matched := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if glob.Glob(pattern, expense.Category) {
				matched = append(matched, expense)
			}
		}
		expenses = matched
	}

	total := int64(len(expenses))

	// Set the offset. Does not need checking since the default is 0
	if int(filter.Offset) < len(expenses) {
		expenses = expenses[filter.Offset:]
	} else {
		expenses = []models.Expense{}
	}

	// Default to 50 expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(expenses) {
		expenses = expenses[:limit]
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(url, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.Preload("Participants").First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newExpense(c.GetString(string(models.DBContextURL)), expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.Preload("Participants").First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	// Participants are a many2many relation, gorm's Updates cannot
	// handle them. They are replaced separately below.
	updateParticipants := slices.Contains(updateFields, any("ParticipantIDs"))
	updateFields = slices.DeleteFunc(updateFields, func(field any) bool {
		return field == any("ParticipantIDs")
	})

	model, err := data.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	if len(updateFields) > 0 {
		err = models.DB.Model(&expense).Select("", updateFields...).Updates(model).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &e,
			})
			return
		}
	}

	if updateParticipants {
		participants, err := loadParticipants(data.ParticipantIDs)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &e,
			})
			return
		}

		err = expense.ReplaceParticipants(models.DB, participants)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &e,
			})
			return
		}
	}

	r := newExpense(c.GetString(string(models.DBContextURL)), expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &r})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

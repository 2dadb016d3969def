package v1

import (
	"net/http"
	"time"

	"github.com/flatshare/backend/internal/httputil"
	"github.com/flatshare/backend/internal/ledger"
	"github.com/flatshare/backend/internal/models"
	"github.com/flatshare/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/flats/{id}/summary [options]
func OptionsFlatSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Flat{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns the spending summary of the flat for a calendar month
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		404		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/flats/{id}/summary [get]
func GetFlatSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	var query QueryMonth
	_ = c.Bind(&query)

	month := types.MonthOf(time.Now().In(time.UTC))
	if query.Month != "" {
		month, err = types.ParseMonth(query.Month)
		if err != nil {
			e := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, SummaryResponse{
				Error: &e,
			})
			return
		}
	}

	var flat models.Flat
	err = models.DB.First(&flat, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	expenses, err := flat.Expenses(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	entries := make([]ledger.Expense, 0, len(expenses))
	for _, expense := range expenses {
		entries = append(entries, expense.Ledger())
	}

	summary := ledger.Summarize(entries, month.Start(), month.End())

	data := newSummary(month, summary)
	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}

package v1

import (
	"fmt"
	"net/http"

	"github.com/flatshare/backend/internal/httputil"
	"github.com/flatshare/backend/internal/ledger"
	"github.com/flatshare/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Balance
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/flats/{id}/balance [options]
func OptionsFlatBalance(c *gin.Context) {
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

// @Summary		Get balance
// @Description	Returns the net position of every member and a settlement plan for the flat
// @Tags			Balance
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Failure		400	{object}	BalanceResponse
// @Failure		404	{object}	BalanceResponse
// @Failure		500	{object}	BalanceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/flats/{id}/balance [get]
func GetFlatBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	var flat models.Flat
	err = models.DB.First(&flat, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	members, err := flat.Members(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	expenses, err := flat.Expenses(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	roster := make([]ledger.Member, 0, len(members))
	for _, member := range members {
		roster = append(roster, member.Ledger())
	}

	entries := make([]ledger.Expense, 0, len(expenses))
	for _, expense := range expenses {
		entries = append(entries, expense.Ledger())
	}

	// The database hooks reject every expense the engine would flag, so
	// validation errors here point at an inconsistency between the two.
	balances, errs := ledger.ComputeBalances(roster, entries, ledger.AbortOnInvalid)
	if len(errs) > 0 {
		e := fmt.Sprintf("%s: %s", errBalanceInvalid, errs[0])
		c.JSON(http.StatusBadRequest, BalanceResponse{
			Error: &e,
		})
		return
	}

	transfers := ledger.PlanSettlement(balances)

	data := newBalance(members, balances, transfers)
	c.JSON(http.StatusOK, BalanceResponse{Data: &data})
}

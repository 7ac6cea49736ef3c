package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pontualhq.com/pontual/web/common"
)

func employeeIDParam(c *gin.Context) (int32, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return int32(id), true
}

// dateRangeQuery reads from/to query params, defaulting to the last 30 days.
func dateRangeQuery(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if s := c.Query("from"); s != "" {
		t, err := common.ParseDateParam(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := common.ParseDateParam(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return time.Time{}, time.Time{}, false
		}
		to = t
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("'to' must not be before 'from'"))
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (ep *Endpoint) ListBalances(c *gin.Context) {
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return
	}

	balances, err := ep.store.ListDailyBalances(c.Request.Context(), employeeID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(balances))
}

func (ep *Endpoint) GetTimeBank(c *gin.Context) {
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}

	bank, err := ep.store.GetTimeBank(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if bank == nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Time bank not found"))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(bank))
}

func (ep *Endpoint) ListEmployees(c *gin.Context) {
	employees, err := ep.store.ListEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(employees))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pontualhq.com/pontual/engine"
	"pontualhq.com/pontual/utils"
	"pontualhq.com/pontual/web/common"
)

type RecomputeDayDTO struct {
	EmployeeID int32           `json:"employeeId" binding:"required"`
	Date       common.DateOnly `json:"date" binding:"required"`
}

func (ep *Endpoint) RecomputeDay(c *gin.Context) {
	var params RecomputeDayDTO
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	balance, err := ep.rec.RecomputeDay(c.Request.Context(), params.EmployeeID, params.Date.Time)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(balance))
}

type RecomputePeriodDTO struct {
	EmployeeID int32           `json:"employeeId" binding:"required"`
	StartDate  common.DateOnly `json:"startDate" binding:"required"`
	EndDate    common.DateOnly `json:"endDate" binding:"required"`
}

type DayFailureDTO struct {
	Date  string `json:"date"`
	Error string `json:"error"`
}

func (ep *Endpoint) RecomputePeriod(c *gin.Context) {
	var params RecomputePeriodDTO
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if params.EndDate.Before(params.StartDate.Time) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("endDate must not be before startDate"))
		return
	}

	result, err := ep.rec.RecomputePeriod(c.Request.Context(), params.EmployeeID, params.StartDate.Time, params.EndDate.Time)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	failures := utils.Map(result.Failures, func(f engine.DayFailure) DayFailureDTO {
		return DayFailureDTO{
			Date:  f.Date.Format("2006-01-02"),
			Error: f.Err.Error(),
		}
	})

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"balances": result.Balances,
		"failures": failures,
		"timeBank": result.TimeBank,
	}))
}

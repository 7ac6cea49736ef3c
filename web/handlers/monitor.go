package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pontualhq.com/pontual/web/common"
)

// ListAnomalies annotates the employee's punches for the requested range
// with schedule-adherence anomalies. Read-only; it never touches persisted
// balances, so the live monitoring views can poll it freely.
func (ep *Endpoint) ListAnomalies(c *gin.Context) {
	employeeID, ok := employeeIDParam(c)
	if !ok {
		return
	}
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return
	}

	annotated, err := ep.rec.AnnotateEvents(c.Request.Context(), employeeID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(annotated))
}

type AnnotateEventDTO struct {
	Annotation string `json:"annotation" binding:"required,max=255"`
}

func (ep *Endpoint) AnnotateEvent(c *gin.Context) {
	eventID := c.Param("id")

	var params AnnotateEventDTO
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if err := ep.store.AnnotateEvent(c.Request.Context(), eventID, params.Annotation); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

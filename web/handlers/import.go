package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pontualhq.com/pontual/model"
	"pontualhq.com/pontual/utils"
	"pontualhq.com/pontual/web/common"
)

// ImportEvents backfills punches from a device CSV dump. Expected columns:
// employee_id, timestamp, kind, device_id. A header row is skipped when the
// first column is not numeric. Rows that cannot be parsed are reported back
// and skipped, never aborting the import.
func (ep *Endpoint) ImportEvents(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("missing 'file' form field"))
		return
	}
	defer file.Close()

	rows, err := utils.ParseCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	var events []model.ClockEvent
	var rejected []string
	for i, row := range rows {
		if len(row) < 3 {
			rejected = append(rejected, fmt.Sprintf("row %d: expected at least 3 columns", i+1))
			continue
		}

		employeeID, err := strconv.Atoi(row[0])
		if err != nil {
			if i == 0 {
				continue // header row
			}
			rejected = append(rejected, fmt.Sprintf("row %d: invalid employee id %q", i+1, row[0]))
			continue
		}

		ts, err := utils.ParseISOTime(row[1])
		if err != nil {
			rejected = append(rejected, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		kind := row[2]
		switch kind {
		case model.KindSessionStart, model.KindBreakStart, model.KindBreakEnd, model.KindSessionEnd:
		default:
			rejected = append(rejected, fmt.Sprintf("row %d: unknown kind %q", i+1, kind))
			continue
		}

		ev := model.ClockEvent{
			ID:         uuid.NewString(),
			EmployeeID: int32(employeeID),
			Timestamp:  *ts,
			Kind:       kind,
		}
		if len(row) > 3 {
			ev.DeviceID = row[3]
		}
		events = append(events, ev)
	}

	if err := ep.store.CreateEvents(c.Request.Context(), events); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	perEmployee := make(map[int32]int)
	for id, evs := range utils.GroupBy(events, func(ev model.ClockEvent) int32 { return ev.EmployeeID }) {
		perEmployee[id] = len(evs)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"imported":    len(events),
		"perEmployee": perEmployee,
		"rejected":    rejected,
	}))
}

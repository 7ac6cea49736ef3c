package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"pontualhq.com/pontual/web/common"
)

// ExportBalances writes the employee's daily balances for the range as an
// xlsx workbook. Admin tooling only; this is not a payroll export format.
func (ep *Endpoint) ExportBalances(c *gin.Context) {
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

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Date", "Status", "Expected (min)", "Worked (min)", "Balance (min)", "Overtime (min)", "Overtime premium (min)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, b := range balances {
		values := []interface{}{
			b.Date.Format("2006-01-02"),
			b.Status,
			b.ExpectedMinutes,
			b.WorkedMinutes,
			b.BalanceMinutes,
			b.OvertimeMinutes,
			b.OvertimePremiumMinutes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("balances-%d-%s-%s.xlsx",
		employeeID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
}

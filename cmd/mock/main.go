package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pontualhq.com/pontual/model"
	"pontualhq.com/pontual/utils"
)

func main() {
	dsn := "root:development@tcp(localhost:3306)/pontual?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	startDate := time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC)

	mockEmployees(db)
	mockClockEvents(db, startDate, endDate)
}

func mockEmployees(db *gorm.DB) {
	var employees []model.Employee
	for i := 1; i <= 50; i++ {
		employees = append(employees, model.Employee{
			EmployeeID: int32(100 + i),
			Code:       fmt.Sprintf("EMP%03d", i),
			FirstName:  fmt.Sprintf("First%d", i),
			Surname:    fmt.Sprintf("Last%d", i),
			Active:     true,
		})
	}

	if err := db.CreateInBatches(employees, 100).Error; err != nil {
		log.Fatalf("failed to insert mock employees: %v", err)
	}

	var schedules []model.ScheduleRow
	for _, emp := range employees {
		row := model.ScheduleRow{
			EmployeeID:       emp.EmployeeID,
			Weekdays:         "1,2,3,4,5",
			Shift1Start:      "08:00",
			Shift1End:        "17:00",
			ToleranceMinutes: 10,
			LunchPolicy:      "variable",
			LunchMinutes:     60,
		}
		// every tenth employee works the night shift
		if emp.EmployeeID%10 == 0 {
			row.Shift1Start = "22:00"
			row.Shift1End = "06:00"
		}
		schedules = append(schedules, row)
	}

	if err := db.CreateInBatches(schedules, 100).Error; err != nil {
		log.Fatalf("failed to insert mock schedules: %v", err)
	}

	fmt.Printf("Inserted %d employees with schedules.\n", len(employees))
}

func mockClockEvents(db *gorm.DB, startDate, endDate time.Time) {
	var employees []model.Employee
	if err := db.Where("employee_id BETWEEN ? AND ?", 101, 150).Find(&employees).Error; err != nil {
		log.Fatalf("failed to fetch employees: %v", err)
	}

	dayWorkers := utils.Filter(employees, func(e model.Employee) bool {
		return e.EmployeeID%10 != 0
	})

	var records []model.ClockEvent
	for _, emp := range dayWorkers {
		for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
			if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
				continue
			}

			// arrive up to 20 minutes around 08:00, leave around 17:00
			in := time.Date(d.Year(), d.Month(), d.Day(), 7, 50, 0, 0, time.UTC).
				Add(time.Duration(rand.Intn(20)) * time.Minute)
			out := time.Date(d.Year(), d.Month(), d.Day(), 16, 55, 0, 0, time.UTC).
				Add(time.Duration(rand.Intn(20)) * time.Minute)

			records = append(records,
				model.ClockEvent{
					ID:         uuid.NewString(),
					EmployeeID: emp.EmployeeID,
					Timestamp:  in,
					Kind:       model.KindSessionStart,
					DeviceID:   "mock-terminal-1",
					Latitude:   utils.Ptr(-23.5505),
					Longitude:  utils.Ptr(-46.6333),
				},
				model.ClockEvent{
					ID:         uuid.NewString(),
					EmployeeID: emp.EmployeeID,
					Timestamp:  out,
					Kind:       model.KindSessionEnd,
					DeviceID:   "mock-terminal-1",
					Latitude:   utils.Ptr(-23.5505),
					Longitude:  utils.Ptr(-46.6333),
				},
			)
		}
	}

	if len(records) == 0 {
		fmt.Println("No employees found. No clock events to insert.")
		return
	}

	fmt.Printf("Inserting %d mock clock events...\n", len(records))

	if err := db.CreateInBatches(records, 100).Error; err != nil {
		log.Fatalf("failed to insert mock clock events: %v", err)
	}

	fmt.Println("Successfully inserted mock clock events.")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pontualhq.com/pontual/engine"
	"pontualhq.com/pontual/store"
)

// Nightly batch: recomputes daily balances and resyncs the time bank for
// every active employee. Defaults to yesterday; -from/-to recompute a
// period. Per-employee failures are reported and do not stop the batch.
func main() {
	fromStr := flag.String("from", "", "start date (YYYY-MM-DD), defaults to yesterday")
	toStr := flag.String("to", "", "end date (YYYY-MM-DD), defaults to -from")
	flag.Parse()

	yesterday := time.Now().AddDate(0, 0, -1)
	from := yesterday
	if *fromStr != "" {
		var err error
		from, err = time.Parse("2006-01-02", *fromStr)
		if err != nil {
			log.Fatalf("invalid -from: %v", err)
		}
	}
	to := from
	if *toStr != "" {
		var err error
		to, err = time.Parse("2006-01-02", *toStr)
		if err != nil {
			log.Fatalf("invalid -to: %v", err)
		}
	}

	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "root:development@tcp(localhost:3306)/pontual?parseTime=true"
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	st := store.New(db)
	rec := engine.NewRecomputer(st, st, st, st)
	ctx := context.Background()

	employees, err := st.ListEmployees(ctx)
	if err != nil {
		log.Fatalf("failed to list employees: %v", err)
	}

	fmt.Printf("Recomputing %s..%s for %d employees\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"), len(employees))

	failed := 0
	for _, emp := range employees {
		result, err := rec.RecomputePeriod(ctx, emp.EmployeeID, from, to)
		if err != nil {
			fmt.Printf("Warning: employee %d (%s): %v\n", emp.EmployeeID, emp.Code, err)
			failed++
			continue
		}
		for _, f := range result.Failures {
			fmt.Printf("Warning: employee %d (%s): %v\n", emp.EmployeeID, emp.Code, f)
		}
	}

	fmt.Printf("Done. %d employees processed, %d failed.\n", len(employees)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

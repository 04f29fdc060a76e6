// Command seed fills an embedded SQLite store with a demo department and a month of
// punches, then prints a manager access token for the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/setting"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/database"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-timekeeping/internal/repository/sqlite"
)

func main() {
	path := flag.String("db", "data/timekeeping.db", "SQLite database path")
	month := flag.String("month", time.Now().Format("2006-01"), "month to fill with punches (YYYY-MM)")
	department := flag.String("department", "ops", "department id of the demo employees")
	tz := flag.String("tz", "America/Sao_Paulo", "timezone of the punches")
	secret := flag.String("secret", os.Getenv("JWT_SECRET_KEY"), "JWT secret used by the API")
	flag.Parse()

	if err := run(*path, *month, *department, *tz, *secret); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(path, month, department, tz, secret string) error {
	ctx := context.Background()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return err
	}
	first, err := time.ParseInLocation("2006-01", month, loc)
	if err != nil {
		return fmt.Errorf("invalid month: %w", err)
	}

	db, err := database.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlite.SetSetting(ctx, db, setting.KeyLateToleranceMinutes, strconv.Itoa(setting.DefaultLateToleranceMinutes)); err != nil {
		return err
	}

	start, err := employee.ParseWorkStart("08:00")
	if err != nil {
		return err
	}
	manager, err := sqlite.CreateEmployee(ctx, db, employee.Employee{
		FullName: "Marina Costa", EmployeeCode: "0001", DepartmentID: &department, DailyHours: 8, WorkStartTime: start,
	})
	if err != nil {
		return err
	}

	staff := []employee.Employee{manager}
	for i, name := range []string{"Ana Souza", "Bruno Lima"} {
		emp, err := sqlite.CreateEmployee(ctx, db, employee.Employee{
			FullName:      name,
			EmployeeCode:  fmt.Sprintf("%04d", i+2),
			DepartmentID:  &department,
			ManagerID:     &manager.ID,
			DailyHours:    8,
			WorkStartTime: start,
		})
		if err != nil {
			return err
		}
		staff = append(staff, emp)
	}

	var nsr int64
	count := 0
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		for i, emp := range staff {
			// every employee skips one weekday, the first one is justified
			if day.Day()%10 == i+3 {
				if i == 0 {
					if _, err := sqlite.CreateJustification(ctx, db, justification.Justification{
						EmployeeID: emp.ID, Date: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
						Status: justification.StatusApproved, Reason: "medical certificate",
					}); err != nil {
						return err
					}
				}
				continue
			}

			lateBy := time.Duration((day.Day()*7+i*5)%20) * time.Minute
			for _, p := range []struct {
				typ punch.Type
				at  time.Duration
			}{
				{punch.TypeEntrada, 8*time.Hour + lateBy},
				{punch.TypeIntervaloInicio, 12 * time.Hour},
				{punch.TypeIntervaloFim, 13 * time.Hour},
				{punch.TypeSaida, 17*time.Hour + lateBy},
			} {
				nsr++
				if _, err := sqlite.CreatePunch(ctx, db, punch.Punch{
					EmployeeID: emp.ID,
					Timestamp:  day.Add(p.at),
					Type:       p.typ,
					Method:     punch.MethodWeb,
					NSR:        nsr,
				}); err != nil {
					return err
				}
				count++
			}
		}
	}

	fmt.Printf("seeded %d employees and %d punches into %s\n", len(staff), count, path)

	if secret == "" {
		return nil
	}
	token, _, err := jwt.NewJWTService(secret, "24h").GenerateAccessToken(manager.ID, auth.RoleManager)
	if err != nil {
		return err
	}
	fmt.Printf("manager %s token:\n%s\n", manager.ID, token)
	return nil
}

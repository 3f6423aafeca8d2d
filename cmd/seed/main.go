package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsehr/pulse-backend-go/internal/config"
	"github.com/pulsehr/pulse-backend-go/internal/domain/announcement"
	"github.com/pulsehr/pulse-backend-go/internal/domain/employee"
	"github.com/pulsehr/pulse-backend-go/internal/domain/holiday"
	"github.com/pulsehr/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehr/pulse-backend-go/internal/domain/payroll"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
	"github.com/pulsehr/pulse-backend-go/internal/repository/postgresql"
)

// Demo salary rows use a fixed formula independent of the live
// calculator so seeded history stays stable across settings changes.
var (
	seedBasePay         = decimal.NewFromInt(5000)
	seedAllowances      = decimal.NewFromInt(200)
	seedOtherDeductions = seedBasePay.Mul(decimal.NewFromFloat(0.1))
)

type demoEmployee struct {
	FullName   string
	Email      string
	Position   string
	ShiftStart string
	ShiftEnd   string
	HoursToday float64
	IsAdmin    bool
}

var demoEmployees = []demoEmployee{
	{FullName: "Amara Putri", Email: "amara.putri@pulsehr.dev", Position: "People Operations Lead", ShiftStart: "09:00", ShiftEnd: "17:00", HoursToday: 8, IsAdmin: true},
	{FullName: "Bima Santoso", Email: "bima.santoso@pulsehr.dev", Position: "Backend Engineer", ShiftStart: "09:00", ShiftEnd: "17:00", HoursToday: 8, IsAdmin: false},
	{FullName: "Citra Lestari", Email: "citra.lestari@pulsehr.dev", Position: "Product Designer", ShiftStart: "10:00", ShiftEnd: "18:00", HoursToday: 8, IsAdmin: false},
	{FullName: "Dewi Anggraini", Email: "dewi.anggraini@pulsehr.dev", Position: "QA Engineer", ShiftStart: "08:00", ShiftEnd: "16:00", HoursToday: 8, IsAdmin: false},
	{FullName: "Eko Prasetyo", Email: "eko.prasetyo@pulsehr.dev", Position: "Customer Success", ShiftStart: "09:00", ShiftEnd: "17:00", HoursToday: 8, IsAdmin: false},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing demo password: ", err)
	}

	now := time.Now()
	joinDate := time.Date(now.Year()-1, time.March, 1, 0, 0, 0, 0, time.UTC)

	var created []employee.Employee
	for _, d := range demoEmployees {
		existing, err := employeeRepo.GetByEmail(ctx, d.Email)
		if err == nil {
			fmt.Println("Skipping existing employee:", d.Email)
			created = append(created, existing)
			continue
		}

		position := d.Position
		emp, err := employeeRepo.Create(ctx, employee.Employee{
			FullName:            d.FullName,
			Email:               d.Email,
			PasswordHash:        string(hash),
			Position:            &position,
			StandardShiftStart:  d.ShiftStart,
			StandardShiftEnd:    d.ShiftEnd,
			StandardHoursPerDay: d.HoursToday,
			JoinDate:            joinDate,
			IsAdmin:             d.IsAdmin,
			IsActive:            true,
		})
		if err != nil {
			log.Fatal("Error creating employee: ", err)
		}
		fmt.Println("Created employee:", emp.Email)
		created = append(created, emp)
	}

	seedPayrollSettings(ctx, payrollRepo)
	seedLeaveBalances(ctx, leaveBalanceRepo, created, now.Year())
	seedHolidays(ctx, holidayRepo, now.Year())
	seedAnnouncement(ctx, announcementRepo, created[0].ID)
	seedSalaryHistory(ctx, payrollRepo, created, now)

	fmt.Println("Seeding complete.")
}

func seedPayrollSettings(ctx context.Context, repo payroll.PayrollRepository) {
	if _, err := repo.GetSettings(ctx); err == nil {
		fmt.Println("Payroll settings already present, skipping")
		return
	}

	_, err := repo.UpsertSettings(ctx, payroll.PayrollSettings{
		HourlyRate:                  decimal.NewFromFloat(17.33),
		OvertimeMultiplier:          decimal.NewFromFloat(1.5),
		StandardWorkingDaysPerMonth: 22,
		DeductionType:               payroll.DeductionTypeHourly,
		DailyDeductionRate:          decimal.NewFromInt(120),
		Currency:                    "USD",
	})
	if err != nil {
		log.Fatal("Error seeding payroll settings: ", err)
	}
	fmt.Println("Seeded payroll settings")
}

func seedLeaveBalances(ctx context.Context, repo leave.LeaveBalanceRepository, emps []employee.Employee, year int) {
	allocations := map[leave.LeaveType]float64{
		leave.LeaveTypePaid: 12,
		leave.LeaveTypeSick: 10,
	}

	for _, emp := range emps {
		for leaveType, total := range allocations {
			_, err := repo.Upsert(ctx, leave.LeaveBalance{
				EmployeeID: emp.ID,
				LeaveType:  leaveType,
				Year:       year,
				TotalDays:  total,
			})
			if err != nil {
				log.Fatal("Error seeding leave balance: ", err)
			}
		}
	}
	fmt.Println("Seeded leave balances for", len(emps), "employees")
}

func seedHolidays(ctx context.Context, repo holiday.HolidayRepository, year int) {
	holidays := []holiday.Holiday{
		{Name: "New Year's Day", Date: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), IsRecurring: true},
		{Name: "Independence Day", Date: time.Date(year, time.August, 17, 0, 0, 0, 0, time.UTC), IsRecurring: true},
		{Name: "Company Anniversary", Date: time.Date(year, time.October, 12, 0, 0, 0, 0, time.UTC), IsRecurring: false},
	}

	for _, h := range holidays {
		if _, err := repo.Create(ctx, h); err != nil {
			if errors.Is(err, holiday.ErrHolidayExists) {
				continue
			}
			log.Fatal("Error seeding holiday: ", err)
		}
	}
	fmt.Println("Seeded holidays")
}

func seedAnnouncement(ctx context.Context, repo announcement.AnnouncementRepository, authorID string) {
	_, err := repo.Create(ctx, announcement.Announcement{
		Title:       "Welcome to PulseHR",
		Body:        "The portal is live. Clock in from the dashboard and submit leave requests under the Leave tab.",
		PublishedAt: time.Now(),
		CreatedBy:   authorID,
	})
	if err != nil {
		log.Fatal("Error seeding announcement: ", err)
	}
	fmt.Println("Seeded announcement")
}

// seedSalaryHistory writes six months of finalized records per employee.
// Overtime varies per employee and month so the dashboard charts have
// some shape to them.
func seedSalaryHistory(ctx context.Context, repo payroll.PayrollRepository, emps []employee.Employee, now time.Time) {
	count := 0
	for i, emp := range emps {
		for back := 1; back <= 6; back++ {
			period := now.AddDate(0, -back, 0)
			overtimeHours := float64((i+back)%5) * 2
			overtimePay := decimal.NewFromFloat(overtimeHours).Mul(decimal.NewFromInt(30))

			gross := seedBasePay.Add(overtimePay).Add(seedAllowances)
			net := gross.Sub(seedOtherDeductions)

			_, err := repo.CreateSalaryRecord(ctx, payroll.SalaryRecord{
				EmployeeID:       emp.ID,
				Month:            int(period.Month()),
				Year:             period.Year(),
				TotalHoursWorked: 8 * 22,
				OvertimeHours:    overtimeHours,
				BasePay:          seedBasePay,
				OvertimePay:      overtimePay,
				Allowances:       seedAllowances,
				GrossSalary:      gross,
				OtherDeductions:  seedOtherDeductions,
				NetSalary:        net,
				Currency:         "USD",
				IsProvisional:    false,
			})
			if err != nil {
				if errors.Is(err, payroll.ErrSalaryRecordExists) {
					continue
				}
				log.Fatal("Error seeding salary record: ", err)
			}
			count++
		}
	}
	fmt.Println("Seeded", count, "salary records")
}

package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pulsehr/pulse-backend-go/internal/config"
	appHTTP "github.com/pulsehr/pulse-backend-go/internal/handler/http"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/cron"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/jwt"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/storage"
	"github.com/pulsehr/pulse-backend-go/internal/repository/postgresql"
	attendanceService "github.com/pulsehr/pulse-backend-go/internal/service/attendance"
	authService "github.com/pulsehr/pulse-backend-go/internal/service/auth"
	employeeService "github.com/pulsehr/pulse-backend-go/internal/service/employee"
	"github.com/pulsehr/pulse-backend-go/internal/service/file"
	leaveService "github.com/pulsehr/pulse-backend-go/internal/service/leave"
	"github.com/pulsehr/pulse-backend-go/internal/service/master"
	payrollService "github.com/pulsehr/pulse-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	documentRepo := postgresql.NewPolicyDocumentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage, documentRepo, employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, timeEntryRepo, employeeRepo, holidayRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, leaveBalanceRepo)
	masterSvc := master.NewMasterService(db, holidayRepo, announcementRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, timeEntryRepo, leaveRequestRepo)

	snapshotInterval, err := time.ParseDuration(cfg.Payroll.SnapshotInterval)
	if err != nil {
		log.Fatal("Invalid PAYROLL_SNAPSHOT_INTERVAL: ", err)
	}

	scheduler := cron.NewScheduler()
	scheduler.AddJob("provisional-salary-snapshots", snapshotInterval, cron.NewProvisionalSalaryJob(payrollSvc))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, fileSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Document:   appHTTP.NewDocumentHandler(fileSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/config"
	appHTTP "github.com/Iqrahussain-041/Attendance-Portal-System/internal/handler/http"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/database"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/pkg/jwt"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/repository/postgresql"
	attendanceService "github.com/Iqrahussain-041/Attendance-Portal-System/internal/service/attendance"
	authService "github.com/Iqrahussain-041/Attendance-Portal-System/internal/service/auth"
	employeeService "github.com/Iqrahussain-041/Attendance-Portal-System/internal/service/employee"
	leaveService "github.com/Iqrahussain-041/Attendance-Portal-System/internal/service/leave"
	reportService "github.com/Iqrahussain-041/Attendance-Portal-System/internal/service/report"
)

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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	verifier := authService.NewBcryptVerifier()

	policy, err := attendanceService.NewWindowPolicy(cfg.Attendance)
	if err != nil {
		log.Fatal("Invalid attendance window configuration: ", err)
	}

	authSvc := authService.NewAuthService(employeeRepo, verifier, JWTService, cfg.Admin.PasswordHash)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, verifier)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, policy)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, leaveRequestRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

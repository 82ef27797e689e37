package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iajwork/smart-attendance-platform/internal/config"
	appHTTP "github.com/iajwork/smart-attendance-platform/internal/handler/http"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/database"
	"github.com/iajwork/smart-attendance-platform/internal/repository/postgresql"
	attendanceService "github.com/iajwork/smart-attendance-platform/internal/service/attendance"
	employeeService "github.com/iajwork/smart-attendance-platform/internal/service/employee"
	ingestService "github.com/iajwork/smart-attendance-platform/internal/service/ingest"
	locationService "github.com/iajwork/smart-attendance-platform/internal/service/location"
	reportService "github.com/iajwork/smart-attendance-platform/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	locationRepo := postgresql.NewLocationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	dailyRepo := postgresql.NewDailyAttendanceRepository(db)
	monthlyRepo := postgresql.NewMonthlySummaryRepository(db)
	txManager := postgresql.NewTxManager(db)

	ingestSvc := ingestService.NewIngestService(txManager, employeeRepo, locationRepo, punchRepo)
	attendanceSvc := attendanceService.NewAttendanceService(punchRepo, dailyRepo, monthlyRepo)
	reportSvc := reportService.NewReportService(dailyRepo, monthlyRepo, attendanceSvc)
	locationSvc := locationService.NewLocationService(locationRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	uploadHandler := appHTTP.NewUploadHandler(ingestSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		uploadHandler,
		attendanceHandler,
		reportHandler,
		locationHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

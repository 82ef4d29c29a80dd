package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/hrms-lite/internal/handler/http"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/sqlite"
	attendanceService "github.com/cmlabs-hris/hrms-lite/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/hrms-lite/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hrms-lite/internal/service/employee"
	reportService "github.com/cmlabs-hris/hrms-lite/internal/service/report"
)

type repositories struct {
	tx             database.Transactor
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	dashboardRepo  dashboard.DashboardRepository
	close          func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, err
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			tx:             postgresql.NewTransactor(db),
			employeeRepo:   postgresql.NewEmployeeRepository(db),
			attendanceRepo: postgresql.NewAttendanceRepository(db),
			dashboardRepo:  postgresql.NewDashboardRepository(db),
			close:          db.Close,
		}, nil
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			tx:             sqlite.NewTransactor(db),
			employeeRepo:   sqlite.NewEmployeeRepository(db),
			attendanceRepo: sqlite.NewAttendanceRepository(db),
			dashboardRepo:  sqlite.NewDashboardRepository(db),
			close:          func() { db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logger := appHTTP.NewLogger("hrms-lite", cfg.App.Env, config.SlogLevel(cfg.App.LogLevel))
	slog.SetDefault(logger)

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer repos.close()

	employeeSvc := employeeService.NewEmployeeService(repos.tx, repos.employeeRepo, repos.attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendanceRepo, repos.employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(repos.dashboardRepo, time.Now, cfg.App.Timezone)
	reportSvc := reportService.NewReportService(repos.attendanceRepo, time.Now)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Server running", "addr", "http://localhost"+port, "driver", cfg.Database.Driver, "timezone", cfg.App.Timezone.String())
	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("Server error", "error", err)
	}
}

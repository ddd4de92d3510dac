package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/config"
	appHTTP "github.com/sinarkarya/leave-backend-go/internal/handler/http"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/database"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/jwt"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/oauth"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/sse"
	"github.com/sinarkarya/leave-backend-go/internal/repository/postgresql"
	auditService "github.com/sinarkarya/leave-backend-go/internal/service/audit"
	serviceAuth "github.com/sinarkarya/leave-backend-go/internal/service/auth"
	employeeService "github.com/sinarkarya/leave-backend-go/internal/service/employee"
	"github.com/sinarkarya/leave-backend-go/internal/service/leave"
	"github.com/sinarkarya/leave-backend-go/internal/service/master"
	notificationService "github.com/sinarkarya/leave-backend-go/internal/service/notification"
	payrollService "github.com/sinarkarya/leave-backend-go/internal/service/payroll"
	reportService "github.com/sinarkarya/leave-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Pool.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var GoogleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	hub := sse.NewHub()

	auditSvc := auditService.NewAuditService(auditRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	leaveSvc := leave.NewLeaveService(db, leaveTypeRepo, leaveRequestRepo, employeeRepo, holidayRepo, auditSvc, notificationSvc)
	payrollSvc := payrollService.NewPayrollService(db, employeeRepo, payrollRepo, auditSvc, notificationSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, auditSvc)
	masterSvc := master.NewMasterService(departmentRepo, holidayRepo)
	authSvc := serviceAuth.NewAuthService(employeeRepo, JWTService)
	reportSvc := reportService.NewReportService(reportRepo, leaveRequestRepo, holidayRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService, GoogleService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, JWTService, hub)
	reportHandler := appHTTP.NewReportHandler(reportSvc, auditSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        "leave-backend",
			AppEnv:         cfg.App.Env,
			AllowedOrigins: []string{cfg.App.FrontendURL},
		},
		JWTService,
		authHandler,
		employeeHandler,
		leaveHandler,
		masterHandler,
		payrollHandler,
		notificationHandler,
		reportHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", slog.Any("error", err))
	}

	// Flush queued notifications before the pool closes.
	notificationSvc.Shutdown()
}

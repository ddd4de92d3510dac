package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/sinarkarya/leave-backend-go/internal/handler/http/middleware"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	masterHandler MasterHandler,
	payrollHandler PayrollHandler,
	notificationHandler NotificationHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// The SSE stream authenticates with its own short-lived token.
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", authHandler.ChangePassword)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.GetMe)

				// HRD only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHRD)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)

					// HRD only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireHRD)
						r.Post("/", leaveHandler.CreateType)
						r.Put("/{id}", leaveHandler.UpdateType)
						r.Delete("/{id}", leaveHandler.DeleteType)
					})
				})

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.CreateRequest)
					r.Get("/my", leaveHandler.GetMyRequests)
					r.Get("/{id}", leaveHandler.GetRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireApprover)
						r.Get("/pending", leaveHandler.ListPending)
						r.Post("/{id}/approve", leaveHandler.ApproveRequest)
						r.Post("/{id}/reject", leaveHandler.RejectRequest)
					})

					// HRD only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireHRD)
						r.Get("/", leaveHandler.ListRequests)
					})
				})

				r.Get("/calendar", leaveHandler.Calendar)
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/departments", masterHandler.ListDepartments)
				r.Get("/holidays", masterHandler.ListHolidays)

				// HRD only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHRD)
					r.Post("/departments", masterHandler.CreateDepartment)
					r.Put("/departments/{id}", masterHandler.UpdateDepartment)
					r.Delete("/departments/{id}", masterHandler.DeleteDepartment)
					r.Post("/holidays", masterHandler.CreateHoliday)
					r.Delete("/holidays/{id}", masterHandler.DeleteHoliday)
				})
			})

			// HRD only
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireHRD)
				r.Get("/encashment/eligible", payrollHandler.ListEligible)
				r.Get("/encashment/history", payrollHandler.History)
				r.Post("/encashment/{id}/cash-out", payrollHandler.CashOut)
				r.Post("/annual-reset", payrollHandler.AnnualReset)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Post("/mark-read", notificationHandler.MarkRead)
				r.Post("/mark-all-read", notificationHandler.MarkAllRead)
				r.Post("/stream-token", notificationHandler.StreamToken)
			})

			// HRD only
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireHRD)
				r.Get("/leave-summary", reportHandler.LeaveSummary)
				r.Get("/activity-logs", reportHandler.ActivityLogs)
			})
		})
	})
	return r
}

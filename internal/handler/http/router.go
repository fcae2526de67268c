package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peopleops-ph/hrops-backend-go/internal/handler/http/middleware"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/jwt"
	"github.com/peopleops-ph/hrops-backend-go/internal/pkg/metrics"
)

func NewRouter(
	env string,
	jwtService jwt.Service,
	authHandler AuthHandler,
	payrollHandler PayrollHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrops-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method("GET", "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Post("/process", payrollHandler.Process)
				r.Put("/update/{id}", payrollHandler.Update)

				r.Route("/{userId}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetByUserID)
					r.Delete("/", payrollHandler.DeleteByUserID)
					r.Post("/send", payrollHandler.Send)
					r.Get("/payslip", payrollHandler.Payslip)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/ledger/{userId}", leaveHandler.GetLedger)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/accrual/run", leaveHandler.RunAccrual)
				})
			})
		})
	})
	return r
}

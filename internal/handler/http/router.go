package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	uploadHandler UploadHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	locationHandler LocationHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "smart-attendance"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/upload", uploadHandler.Upload)

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/daily", attendanceHandler.ComputeDaily)
			r.Post("/monthly", attendanceHandler.ComputeMonth)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily", reportHandler.DailyReport)
			r.Get("/monthly", reportHandler.MonthlyReport)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", locationHandler.List)
			r.Post("/", locationHandler.Create)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/{id}/deactivate", employeeHandler.Deactivate)
		})
	})

	return r
}

package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lakbayhr/hr-portal-go/internal/handler/http/middleware"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	scheduleHandler ScheduleHandler,
	attendanceHandler AttendanceHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/month", scheduleHandler.GetMonthSchedule)
				r.Get("/date/{date}", scheduleHandler.GetScheduleByDate)
				r.Get("/range", scheduleHandler.GetScheduleRange)
				r.Post("/", scheduleHandler.CreateSchedule)
				r.Post("/generate", scheduleHandler.GenerateMonth)
				r.Put("/bulk", scheduleHandler.BulkUpdate)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/summary", attendanceHandler.GetPeriodSummary)
			})
		})
	})
	return r
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/lakbayhr/hr-portal-go/internal/config"
	"github.com/lakbayhr/hr-portal-go/internal/domain/calendar"
	appHTTP "github.com/lakbayhr/hr-portal-go/internal/handler/http"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/database"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/holidays"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/jwt"
	"github.com/lakbayhr/hr-portal-go/internal/repository/postgresql"
	attendanceService "github.com/lakbayhr/hr-portal-go/internal/service/attendance"
	scheduleService "github.com/lakbayhr/hr-portal-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	var holidayProvider calendar.Provider
	if cfg.Calendar.HolidayFile != "" {
		holidayProvider, err = holidays.NewProviderFromFile(cfg.Calendar.HolidayFile)
	} else {
		holidayProvider, err = holidays.NewStaticProvider()
	}
	if err != nil {
		log.Fatal("Failed to load holiday table: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, holidayProvider)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, scheduleRepo)

	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		JWTService,
		scheduleHandler,
		attendanceHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Suhaibk137/attendance-app/internal/config"
	appHTTP "github.com/Suhaibk137/attendance-app/internal/handler/http"
	"github.com/Suhaibk137/attendance-app/internal/pkg/clock"
	"github.com/Suhaibk137/attendance-app/internal/pkg/database"
	"github.com/Suhaibk137/attendance-app/internal/pkg/export"
	"github.com/Suhaibk137/attendance-app/internal/pkg/jwt"
	"github.com/Suhaibk137/attendance-app/internal/repository/postgresql"
	attendanceService "github.com/Suhaibk137/attendance-app/internal/service/attendance"
	authService "github.com/Suhaibk137/attendance-app/internal/service/auth"
	reportService "github.com/Suhaibk137/attendance-app/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Error loading reference time zone:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	serializer := export.NewCSVSerializer(cfg.Report.TempDir)

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		clock.System(),
		location,
		cfg.App.StorageTimeout,
	)
	reportSvc := reportService.NewReportService(attendanceRepo, serializer, cfg.App.StorageTimeout)
	authSvc := authService.NewAuthService(cfg.Admin.PasswordHash, jwtService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		authHandler,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

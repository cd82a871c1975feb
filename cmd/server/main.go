package main

import (
	"net/http"
	"os"

	_ "gymcrm/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"gymcrm/internal/auth"
	"gymcrm/internal/cache"
	"gymcrm/internal/config"
	"gymcrm/internal/db"
	"gymcrm/internal/handler"
	"gymcrm/internal/model"
	"gymcrm/internal/repository"
	"gymcrm/internal/router"
	"gymcrm/internal/service"
)

// @title Gym CRM API
// @version 1.0
// @description Gym management CRM with leads, members, memberships, billing, attendance and reporting.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in header
// @name Authorization
// @description Session JWT, sent as the gym_session cookie or an Authorization bearer token.
func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Lead{},
		&model.Member{},
		&model.MembershipPlan{},
		&model.Membership{},
		&model.Payment{},
		&model.Attendance{},
		&model.FitnessGoal{},
		&model.Exercise{},
		&model.DietType{},
		&model.WorkoutPlan{},
		&model.ExerciseSet{},
		&model.DietPlan{},
		&model.Meal{},
		&model.ActivityLog{},
		&model.Notification{},
		&model.GymProfile{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	leadRepo := repository.NewLeadRepository(gormDB)
	memberRepo := repository.NewMemberRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)
	membershipRepo := repository.NewMembershipRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	attendanceRepo := repository.NewAttendanceRepository(gormDB)
	goalRepo := repository.NewFitnessGoalRepository(gormDB)
	exerciseRepo := repository.NewExerciseRepository(gormDB)
	dietTypeRepo := repository.NewDietTypeRepository(gormDB)
	workoutRepo := repository.NewWorkoutRepository(gormDB)
	dietRepo := repository.NewDietRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	gymProfileRepo := repository.NewGymProfileRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Services
	activityService := service.NewActivityService(activityRepo, logger)
	authService := service.NewAuthService(userRepo, jwtService, logger)
	leadService := service.NewLeadService(leadRepo, activityService)
	memberService := service.NewMemberService(memberRepo, activityService)
	membershipService := service.NewMembershipService(planRepo, membershipRepo, memberRepo, activityService)
	paymentService := service.NewPaymentService(paymentRepo, memberRepo, membershipRepo, activityService)
	attendanceService := service.NewAttendanceService(attendanceRepo, memberRepo, activityService)
	workoutService := service.NewWorkoutService(workoutRepo, activityService)
	dietService := service.NewDietService(dietRepo, activityService)
	catalogService := service.NewCatalogService(goalRepo, exerciseRepo, dietTypeRepo, workoutRepo, dietRepo, activityService)
	staffService := service.NewStaffService(userRepo, roleRepo, activityService)
	notificationService := service.NewNotificationService(notificationRepo, leadRepo, membershipRepo, cacheClient, logger)
	reportService := service.NewReportService(paymentRepo, memberRepo, membershipRepo, attendanceRepo, leadRepo, cacheClient)
	gymProfileService := service.NewGymProfileService(gymProfileRepo, activityService)

	// Handlers
	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService, cfg.SessionCookie),
		Lead:         handler.NewLeadHandler(leadService),
		Member:       handler.NewMemberHandler(memberService),
		Membership:   handler.NewMembershipHandler(membershipService),
		Payment:      handler.NewPaymentHandler(paymentService),
		Attendance:   handler.NewAttendanceHandler(attendanceService),
		Workout:      handler.NewWorkoutHandler(workoutService),
		Diet:         handler.NewDietHandler(dietService),
		Catalog:      handler.NewCatalogHandler(catalogService),
		Staff:        handler.NewStaffHandler(staffService),
		Notification: handler.NewNotificationHandler(notificationService),
		Report:       handler.NewReportHandler(reportService),
		Export: handler.NewExportHandler(
			memberService,
			paymentService,
			membershipService,
			leadService,
			attendanceService,
			gymProfileService,
		),
		GymProfile: handler.NewGymProfileHandler(gymProfileService),
	}

	router.Register(e, cfg, jwtService, handlers)

	addr := ":" + cfg.ServerPort
	logger.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server start")
	}
}

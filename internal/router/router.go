package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gymcrm/internal/auth"
	"gymcrm/internal/authz"
	"gymcrm/internal/config"
	"gymcrm/internal/handler"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Lead         *handler.LeadHandler
	Member       *handler.MemberHandler
	Membership   *handler.MembershipHandler
	Payment      *handler.PaymentHandler
	Attendance   *handler.AttendanceHandler
	Workout      *handler.WorkoutHandler
	Diet         *handler.DietHandler
	Catalog      *handler.CatalogHandler
	Staff        *handler.StaffHandler
	Notification *handler.NotificationHandler
	Report       *handler.ReportHandler
	Export       *handler.ExportHandler
	GymProfile   *handler.GymProfileHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, jwtService *auth.JWTService, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Page navigation runs through the session guard; unauthenticated visits
	// redirect to /login, role violations redirect home.
	e.Use(authz.Guard(jwtService, cfg.SessionCookie))

	// Public routes
	public := e.Group("/api/public")
	public.POST("/login", h.Auth.Login)

	// Secured routes (session cookie or bearer token)
	api := e.Group("/api", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + cfg.SessionCookie + ",header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	api.POST("/logout", h.Auth.Logout)
	api.GET("/me", h.Auth.Me)

	// Lead routes
	api.POST("/leads", h.Lead.Create)
	api.GET("/leads", h.Lead.List)
	api.GET("/leads/stats", h.Lead.Stats)
	api.GET("/leads/:id", h.Lead.Get)
	api.PUT("/leads/:id", h.Lead.Update)
	api.PUT("/leads/:id/status", h.Lead.UpdateStatus)
	api.POST("/leads/:id/convert", h.Lead.Convert)
	api.DELETE("/leads/:id", h.Lead.Delete)

	// Member routes
	api.POST("/members", h.Member.Create)
	api.GET("/members", h.Member.List)
	api.GET("/members/:id", h.Member.Get)
	api.PUT("/members/:id", h.Member.Update)
	api.DELETE("/members/:id", h.Member.Delete)
	api.GET("/members/:id/attendance", h.Attendance.MemberHistory)
	api.GET("/members/:id/payments", h.Payment.ListByMember)

	// Plan and membership routes
	api.POST("/plans", h.Membership.CreatePlan)
	api.GET("/plans", h.Membership.ListPlans)
	api.GET("/plans/:id", h.Membership.GetPlan)
	api.PUT("/plans/:id", h.Membership.UpdatePlan)
	api.DELETE("/plans/:id", h.Membership.DeletePlan)
	api.POST("/memberships", h.Membership.Assign)
	api.POST("/memberships/:id/renew", h.Membership.Renew)

	// Payment routes
	api.POST("/payments", h.Payment.Create)
	api.GET("/payments", h.Payment.List)
	api.GET("/payments/:id", h.Payment.Get)
	api.GET("/payments/:id/invoice", h.Export.Invoice)

	// Attendance routes
	api.POST("/attendance/check-in", h.Attendance.CheckIn)
	api.POST("/attendance/quick-check-in", h.Attendance.QuickCheckIn)
	api.POST("/attendance/check-out", h.Attendance.CheckOut)
	api.GET("/attendance", h.Attendance.ListByDate)

	// Workout and diet plan routes
	api.POST("/workouts", h.Workout.Create)
	api.GET("/workouts", h.Workout.List)
	api.GET("/workouts/:id", h.Workout.Get)
	api.PUT("/workouts/:id", h.Workout.Update)
	api.DELETE("/workouts/:id", h.Workout.Delete)
	api.POST("/diets", h.Diet.Create)
	api.GET("/diets", h.Diet.List)
	api.GET("/diets/:id", h.Diet.Get)
	api.PUT("/diets/:id", h.Diet.Update)
	api.DELETE("/diets/:id", h.Diet.Delete)

	// Catalog routes
	api.GET("/catalogs/goals", h.Catalog.ListGoals)
	api.POST("/catalogs/goals", h.Catalog.CreateGoal)
	api.DELETE("/catalogs/goals/:id", h.Catalog.DeleteGoal)
	api.GET("/catalogs/exercises", h.Catalog.ListExercises)
	api.POST("/catalogs/exercises", h.Catalog.CreateExercise)
	api.DELETE("/catalogs/exercises/:id", h.Catalog.DeleteExercise)
	api.GET("/catalogs/diet-types", h.Catalog.ListDietTypes)
	api.POST("/catalogs/diet-types", h.Catalog.CreateDietType)
	api.DELETE("/catalogs/diet-types/:id", h.Catalog.DeleteDietType)

	// Staff and role routes
	api.POST("/staff", h.Staff.Create)
	api.GET("/staff", h.Staff.List)
	api.GET("/staff/trainers", h.Staff.ListTrainers)
	api.GET("/staff/:id", h.Staff.Get)
	api.PUT("/staff/:id", h.Staff.Update)
	api.DELETE("/staff/:id", h.Staff.Deactivate)
	api.POST("/roles", h.Staff.CreateRole)
	api.GET("/roles", h.Staff.ListRoles)
	api.PUT("/roles/:id", h.Staff.UpdateRole)
	api.DELETE("/roles/:id", h.Staff.DeleteRole)

	// Notification routes
	api.GET("/notifications/check", h.Notification.Check)
	api.POST("/notifications/check", h.Notification.Check)
	api.GET("/notifications", h.Notification.List)
	api.POST("/notifications/:id/read", h.Notification.MarkRead)
	api.POST("/notifications/read-all", h.Notification.MarkAllRead)
	api.POST("/notifications/:id/dismiss", h.Notification.Dismiss)

	// Dashboard and report routes
	api.GET("/dashboard", h.Report.Dashboard)
	api.GET("/reports/revenue", h.Report.MonthlyRevenue)
	api.GET("/reports/payment-modes", h.Report.PaymentModes)
	api.GET("/reports/plans", h.Report.PlanRevenue)
	api.GET("/reports/member-status", h.Report.MemberStatus)
	api.GET("/reports/attendance", h.Report.AttendanceTrend)
	api.GET("/reports/lead-funnel", h.Report.LeadFunnel)
	api.GET("/reports/lead-sources", h.Report.LeadSources)

	// Export routes
	api.GET("/exports/members", h.Export.Members)
	api.GET("/exports/payments", h.Export.Payments)
	api.GET("/exports/memberships", h.Export.Memberships)
	api.GET("/exports/leads", h.Export.Leads)
	api.GET("/exports/attendance", h.Export.Attendance)

	// Settings routes
	api.GET("/settings/gym-profile", h.GymProfile.Get)
	api.PUT("/settings/gym-profile", h.GymProfile.Save)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

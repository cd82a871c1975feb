package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"gymcrm/internal/auth"
	"gymcrm/internal/config"
	"gymcrm/internal/handler"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()

	e := echo.New()
	cfg := &config.Config{SessionCookie: "gym_session", JWTSecret: "test-secret"}
	Register(e, cfg, auth.NewJWTService(cfg.JWTSecret), Handlers{
		Auth:         handler.NewAuthHandler(nil, cfg.SessionCookie),
		Lead:         handler.NewLeadHandler(nil),
		Member:       handler.NewMemberHandler(nil),
		Membership:   handler.NewMembershipHandler(nil),
		Payment:      handler.NewPaymentHandler(nil),
		Attendance:   handler.NewAttendanceHandler(nil),
		Workout:      handler.NewWorkoutHandler(nil),
		Diet:         handler.NewDietHandler(nil),
		Catalog:      handler.NewCatalogHandler(nil),
		Staff:        handler.NewStaffHandler(nil),
		Notification: handler.NewNotificationHandler(nil),
		Report:       handler.NewReportHandler(nil),
		Export:       handler.NewExportHandler(nil, nil, nil, nil, nil, nil),
		GymProfile:   handler.NewGymProfileHandler(nil),
	})

	routes := make(map[string]bool)
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestRegister_NotificationCheckAcceptsGetAndPost(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes[http.MethodGet+" /api/notifications/check"])
	assert.True(t, routes[http.MethodPost+" /api/notifications/check"])
}

func TestRegister_CoreSurface(t *testing.T) {
	routes := registeredRoutes(t)

	for _, want := range []string{
		http.MethodPost + " /api/public/login",
		http.MethodGet + " /healthz",
		http.MethodPost + " /api/leads/:id/convert",
		http.MethodGet + " /api/payments/:id/invoice",
		http.MethodGet + " /api/exports/members",
		http.MethodPut + " /api/settings/gym-profile",
	} {
		assert.True(t, routes[want], want)
	}
}

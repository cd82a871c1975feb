package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymcrm/internal/auth"
	"gymcrm/internal/model"
)

func sessionWithRole(role model.UserRole) *auth.Session {
	return &auth.Session{Role: role}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		sess         *auth.Session
		wantAllowed  bool
		wantRedirect string
	}{
		{name: "public api is always open", path: "/api/public/login", sess: nil, wantAllowed: true},
		{name: "unauthenticated page visit redirects to login", path: "/members", sess: nil, wantRedirect: "/login"},
		{name: "unauthenticated login page is open", path: "/login", sess: nil, wantAllowed: true},
		{name: "signed-in user on login page goes home", path: "/login", sess: sessionWithRole(model.RoleAdmin), wantRedirect: "/"},
		{name: "signed-in user on register page goes home", path: "/register", sess: sessionWithRole(model.RoleTrainer), wantRedirect: "/"},

		{name: "admin reaches settings", path: "/settings", sess: sessionWithRole(model.RoleAdmin), wantAllowed: true},
		{name: "super admin bounced from settings", path: "/settings", sess: sessionWithRole(model.RoleSuperAdmin), wantRedirect: "/"},
		{name: "super admin bounced from staff", path: "/staff", sess: sessionWithRole(model.RoleSuperAdmin), wantRedirect: "/"},
		{name: "receptionist bounced from settings", path: "/settings", sess: sessionWithRole(model.RoleReceptionist), wantRedirect: "/"},
		{name: "trainer bounced from staff", path: "/staff/new", sess: sessionWithRole(model.RoleTrainer), wantRedirect: "/"},

		{name: "trainer bounced from billing", path: "/billing", sess: sessionWithRole(model.RoleTrainer), wantRedirect: "/"},
		{name: "trainer bounced from reports", path: "/reports/revenue", sess: sessionWithRole(model.RoleTrainer), wantRedirect: "/"},
		{name: "trainer bounced from leads", path: "/leads", sess: sessionWithRole(model.RoleTrainer), wantRedirect: "/"},
		{name: "trainer reaches workouts", path: "/workouts", sess: sessionWithRole(model.RoleTrainer), wantAllowed: true},
		{name: "receptionist reaches leads", path: "/leads", sess: sessionWithRole(model.RoleReceptionist), wantAllowed: true},
		{name: "helper reaches the dashboard", path: "/", sess: sessionWithRole(model.RoleHelper), wantAllowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Decide(tt.path, tt.sess)
			assert.Equal(t, tt.wantAllowed, decision.Allowed)
			if !tt.wantAllowed {
				assert.Equal(t, tt.wantRedirect, decision.Redirect)
			}
		})
	}
}

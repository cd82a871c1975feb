package authz

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gymcrm/internal/auth"
	"gymcrm/internal/model"
)

const (
	publicAPIPrefix = "/api/public"

	// SessionKey is the echo context key the guard stores the resolved
	// session under.
	SessionKey = "session"
)

var (
	authPages         = []string{"/login", "/register"}
	adminPrefixes     = []string{"/settings", "/staff"}
	trainerRestricted = []string{"/billing", "/reports", "/leads"}

	// API, health and docs routes carry their own auth; the guard only
	// gates page navigation.
	guardExempt = []string{"/api", "/swagger", "/healthz"}
)

// Decision is the guard's verdict for a request.
type Decision struct {
	Allowed  bool
	Redirect string // target path when not allowed
}

var allow = Decision{Allowed: true}

func redirect(to string) Decision {
	return Decision{Redirect: to}
}

// Decide evaluates the guard decision table for a path and resolved session
// (nil when unauthenticated). Rules are evaluated in order; first match wins.
func Decide(path string, sess *auth.Session) Decision {
	if strings.HasPrefix(path, publicAPIPrefix) {
		return allow
	}

	onAuthPage := hasAnyPrefix(path, authPages)

	if onAuthPage && sess != nil {
		return redirect("/")
	}
	if !onAuthPage && sess == nil {
		return redirect("/login")
	}
	if sess != nil {
		if hasAnyPrefix(path, adminPrefixes) && sess.Role != model.RoleAdmin {
			return redirect("/")
		}
		if sess.Role == model.RoleTrainer && hasAnyPrefix(path, trainerRestricted) {
			return redirect("/")
		}
	}
	return allow
}

// Guard returns middleware gating page routes before any handler runs. It
// resolves the session cookie (absence or an invalid token both count as "no
// session"), applies the decision table and either redirects or stores the
// session in the request context for downstream handlers.
func Guard(jwtService *auth.JWTService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if hasAnyPrefix(path, guardExempt) {
				return next(c)
			}

			sess := resolveSession(c, jwtService, cookieName)

			decision := Decide(path, sess)
			if !decision.Allowed {
				return c.Redirect(http.StatusFound, decision.Redirect)
			}

			if sess != nil {
				c.Set(SessionKey, sess)
			}
			return next(c)
		}
	}
}

// CurrentSession returns the session the guard stored, or nil.
func CurrentSession(c echo.Context) *auth.Session {
	sess, _ := c.Get(SessionKey).(*auth.Session)
	return sess
}

// SessionFromToken resolves a session from the validated echo-jwt token on
// API routes.
func SessionFromToken(c echo.Context) *auth.Session {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil
	}
	sess, err := auth.SessionFromClaims(claims)
	if err != nil {
		return nil
	}
	return sess
}

func resolveSession(c echo.Context, jwtService *auth.JWTService, cookieName string) *auth.Session {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := jwtService.ValidateToken(cookie.Value)
	if err != nil {
		return nil
	}
	sess, err := auth.SessionFromClaims(claims)
	if err != nil {
		return nil
	}
	return sess
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

package middleware

import (
	"net/http"
	"net/url"

	"clinic-manager/pkg/session"

	"github.com/sirupsen/logrus"
)

// LoginRequiredMessage is shown on the home view after a denied navigation.
const LoginRequiredMessage = "Please log in to view this page."

type GuardState string

const (
	GuardAllowed GuardState = "allowed"
	GuardDenied  GuardState = "denied"
)

// Decision is the outcome of evaluating one navigation.
type Decision struct {
	State      GuardState
	RedirectTo string
	Message    string
}

// RouteGuard keeps signed-out users off the protected views. It reads the
// session on every evaluation and remembers nothing between them.
type RouteGuard struct {
	session *session.Session
	log     *logrus.Logger
}

func NewRouteGuard(sess *session.Session, log *logrus.Logger) *RouteGuard {
	return &RouteGuard{
		session: sess,
		log:     log,
	}
}

// Evaluate denies exactly when no token is present.
func (g *RouteGuard) Evaluate(view string) Decision {
	if g.session.Authenticated() {
		return Decision{State: GuardAllowed}
	}
	return Decision{
		State:      GuardDenied,
		RedirectTo: "/?msg=" + url.QueryEscape(LoginRequiredMessage),
		Message:    LoginRequiredMessage,
	}
}

func (g *RouteGuard) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := g.Evaluate(r.URL.Path)
		if decision.State == GuardDenied {
			g.log.WithFields(logrus.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			}).Info("Navigation denied without session")
			http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-manager/pkg/session"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard() (*RouteGuard, *session.Session) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	sess := session.New(log)
	return NewRouteGuard(sess, log), sess
}

func TestRouteGuard_EvaluateFollowsSession(t *testing.T) {
	guard, sess := newTestGuard()

	denied := guard.Evaluate("/doctors/5")
	assert.Equal(t, GuardDenied, denied.State)
	assert.Equal(t, LoginRequiredMessage, denied.Message)
	assert.Equal(t, "/?msg=Please+log+in+to+view+this+page.", denied.RedirectTo)

	require.NoError(t, sess.Login("token"))
	assert.Equal(t, GuardAllowed, guard.Evaluate("/doctors/5").State)

	sess.Logout()
	assert.Equal(t, GuardDenied, guard.Evaluate("/doctors/5").State)
}

func TestRouteGuard_ProtectRedirects(t *testing.T) {
	guard, sess := newTestGuard()
	var served int
	handler := guard.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients/20", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?msg=Please+log+in+to+view+this+page.", rec.Header().Get("Location"))
	assert.Equal(t, 0, served)

	require.NoError(t, sess.Login("token"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/patients/20", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, served)
}

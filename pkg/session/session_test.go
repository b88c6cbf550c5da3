package session

import (
	"io"
	"sync"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(log)
}

func signedToken(t *testing.T, email string) string {
	t.Helper()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"email": email, "sub": "42"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSession_LoginLogout(t *testing.T) {
	s := newTestSession()

	_, ok := s.Token()
	assert.False(t, ok)
	assert.False(t, s.Authenticated())

	require.NoError(t, s.Login("opaque-token"))
	token, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "opaque-token", token)
	assert.Empty(t, s.Subject())

	s.Logout()
	token, ok = s.Token()
	assert.False(t, ok)
	assert.Empty(t, token)
	assert.False(t, s.Authenticated())
}

func TestSession_LoginRejectsEmptyToken(t *testing.T) {
	s := newTestSession()
	assert.ErrorIs(t, s.Login("   "), ErrEmptyToken)
	assert.False(t, s.Authenticated())
}

func TestSession_SubjectFromJWT(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Login(signedToken(t, "staff@clinic.test")))
	assert.Equal(t, "staff@clinic.test", s.Subject())

	s.Close()
	assert.Empty(t, s.Subject())
}

func TestSession_ConcurrentReadsDuringLogout(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Login("token-a"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, ok := s.Token()
			if ok {
				assert.Equal(t, "token-a", token)
			} else {
				assert.Empty(t, token)
			}
		}()
	}
	s.Logout()
	wg.Wait()

	_, ok := s.Token()
	assert.False(t, ok)
}

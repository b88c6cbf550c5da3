// Package session holds the bearer credential of the signed-in clinic user.
//
// A Session is created once by the composition root and shared by pointer
// with every consumer. Only Login and Logout mutate it, and both replace the
// credential as one value, so concurrent readers see either the old or the
// new credential and never a mix of the two.
package session

import (
	"errors"
	"strings"
	"sync/atomic"

	"clinic-manager/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var ErrEmptyToken = errors.New("token must not be empty")

type credential struct {
	token  string
	claims *jwt.Claims
}

type Session struct {
	current atomic.Pointer[credential]
	log     *logrus.Logger
}

func New(log *logrus.Logger) *Session {
	return &Session{log: log}
}

// Login replaces the current credential with token.
func (s *Session) Login(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	cred := &credential{token: token}
	if claims, err := jwt.Inspect(token); err == nil {
		cred.claims = claims
	} else {
		s.log.Debugf("Session token is opaque: %v", err)
	}

	s.current.Store(cred)
	s.log.WithField("subject", cred.claims.DisplayName()).Info("Session started")
	return nil
}

// Logout drops the credential. Requests issued afterwards carry no token.
func (s *Session) Logout() {
	if old := s.current.Swap(nil); old != nil {
		s.log.WithField("subject", old.claims.DisplayName()).Info("Session ended")
	}
}

// Token returns the bearer token and whether one is present.
func (s *Session) Token() (string, bool) {
	cred := s.current.Load()
	if cred == nil {
		return "", false
	}
	return cred.token, true
}

func (s *Session) Authenticated() bool {
	return s.current.Load() != nil
}

// Subject is the display identity decoded from the token, empty for opaque
// tokens or when signed out.
func (s *Session) Subject() string {
	cred := s.current.Load()
	if cred == nil {
		return ""
	}
	return cred.claims.DisplayName()
}

// Close tears the session down at process exit.
func (s *Session) Close() {
	s.Logout()
}

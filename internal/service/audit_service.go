package service

import (
	"context"
	"sync"
	"time"

	"clinic-manager/internal/domain/entity"
	"clinic-manager/pkg/session"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultAuditCapacity = 200

// AuditService records every mutation issued against the clinic API. Events
// go to the structured log and to a bounded in-memory ring.
type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID int64, newValue interface{}, err error)
	LogUpdate(ctx context.Context, action string, entityName string, entityID int64, newValue interface{}, err error)
	LogDelete(ctx context.Context, action string, entityName string, entityID int64, err error)
	LogCascadeStep(ctx context.Context, doctorID int64, step string, ids []int64, err error)
	LogSession(ctx context.Context, action string, subject string, err error)
	Recent(limit int) []entity.AuditEvent
}

type auditService struct {
	log      *logrus.Logger
	session  *session.Session
	capacity int

	mu     sync.Mutex
	events []entity.AuditEvent
}

func NewAuditService(log *logrus.Logger, sess *session.Session) AuditService {
	return &auditService{
		log:      log,
		session:  sess,
		capacity: defaultAuditCapacity,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID int64, newValue interface{}, err error) {
	s.record(action, entityName, entityID, entity.JSON{"new_value": newValue}, err)
}

// LogUpdate logs an update action with the value the API returned
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID int64, newValue interface{}, err error) {
	s.record(action, entityName, entityID, entity.JSON{"new_value": newValue}, err)
}

// LogDelete logs a delete action
func (s *auditService) LogDelete(ctx context.Context, action string, entityName string, entityID int64, err error) {
	s.record(action, entityName, entityID, nil, err)
}

func (s *auditService) LogCascadeStep(ctx context.Context, doctorID int64, step string, ids []int64, err error) {
	s.record(entity.AuditActionCascadeStep, "doctor", doctorID, entity.JSON{"step": step, "ids": ids}, err)
}

func (s *auditService) LogSession(ctx context.Context, action string, subject string, err error) {
	s.record(action, "session", 0, entity.JSON{"subject": subject}, err)
}

// Recent returns up to limit events, newest first.
func (s *auditService) Recent(limit int) []entity.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]entity.AuditEvent, 0, limit)
	for i := len(s.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.events[i])
	}
	return out
}

func (s *auditService) record(action, entityName string, entityID int64, metadata entity.JSON, err error) {
	event := entity.AuditEvent{
		ID:        uuid.New(),
		Subject:   s.session.Subject(),
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		Outcome:   entity.AuditOutcomeSuccess,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err != nil {
		event.Outcome = entity.AuditOutcomeFailure
		if event.Metadata == nil {
			event.Metadata = entity.JSON{}
		}
		event.Metadata["error"] = err.Error()
	}

	entry := s.log.WithFields(logrus.Fields{
		"audit_id":  event.ID.String(),
		"action":    event.Action,
		"entity":    event.Entity,
		"entity_id": event.EntityID,
		"outcome":   event.Outcome,
	})
	if err != nil {
		entry.Warnf("Audit: %s failed: %v", action, err)
	} else {
		entry.Info("Audit: " + action)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.capacity {
		s.events = s.events[len(s.events)-s.capacity:]
	}
}

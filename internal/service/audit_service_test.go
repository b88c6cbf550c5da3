package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"clinic-manager/internal/domain/entity"
	"clinic-manager/pkg/session"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_RecordsNewestFirst(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := NewAuditService(log, session.New(log))
	ctx := context.Background()

	svc.LogCreate(ctx, entity.AuditActionDoctorCreate, "doctor", 5, map[string]string{"first_name": "Greg"}, nil)
	svc.LogDelete(ctx, entity.AuditActionPatientDelete, "patient", 20, errors.New("boom"))

	events := svc.Recent(10)
	require.Len(t, events, 2)
	assert.Equal(t, entity.AuditActionPatientDelete, events[0].Action)
	assert.Equal(t, entity.AuditOutcomeFailure, events[0].Outcome)
	assert.Equal(t, "boom", events[0].Metadata["error"])
	assert.Equal(t, entity.AuditOutcomeSuccess, events[1].Outcome)

	assert.Len(t, svc.Recent(1), 1)
}

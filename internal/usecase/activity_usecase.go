package usecase

import (
	"context"

	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/service"
)

const defaultActivityLimit = 50

type ActivityUsecase interface {
	Recent(ctx context.Context, limit int) []entity.AuditEvent
}

type activityUsecase struct {
	auditService service.AuditService
}

func NewActivityUsecase(auditService service.AuditService) ActivityUsecase {
	return &activityUsecase{auditService: auditService}
}

func (u *activityUsecase) Recent(ctx context.Context, limit int) []entity.AuditEvent {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return u.auditService.Recent(limit)
}

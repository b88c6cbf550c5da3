package repository

import (
	"context"
	"fmt"
	"net/http"

	"clinic-manager/internal/domain/entity"
	domainRepo "clinic-manager/internal/domain/repository"
)

type dependentsRepository struct {
	client *Client
}

func NewDependentsRepository(client *Client) domainRepo.DependentsRepository {
	return &dependentsRepository{client: client}
}

func (r *dependentsRepository) AppointmentsOfDoctor(ctx context.Context, doctorID int64) ([]entity.Appointment, error) {
	appointments := []entity.Appointment{}
	path := fmt.Sprintf("/%s/%d/%s", entity.CollectionDoctors, doctorID, entity.CollectionAppointments)
	if err := r.client.do(ctx, request{method: http.MethodGet, path: path}, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *dependentsRepository) PatientsOfDoctor(ctx context.Context, doctorID int64) ([]entity.Patient, error) {
	patients := []entity.Patient{}
	path := fmt.Sprintf("/%s/%d/%s", entity.CollectionDoctors, doctorID, entity.CollectionPatients)
	if err := r.client.do(ctx, request{method: http.MethodGet, path: path}, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

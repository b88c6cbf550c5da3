package repository

import (
	"context"
	"fmt"
	"net/http"

	"clinic-manager/internal/domain/entity"
	domainRepo "clinic-manager/internal/domain/repository"
)

// ResourceClient is the typed CRUD client of one API collection.
type ResourceClient[T any] struct {
	client     *Client
	collection entity.Collection
	publicList bool
}

func NewDoctorRepository(client *Client) domainRepo.DoctorRepository {
	// the doctor listing is the one read the API serves without a token
	return &ResourceClient[entity.Doctor]{client: client, collection: entity.CollectionDoctors, publicList: true}
}

func NewPatientRepository(client *Client) domainRepo.PatientRepository {
	return &ResourceClient[entity.Patient]{client: client, collection: entity.CollectionPatients}
}

func NewAppointmentRepository(client *Client) domainRepo.AppointmentRepository {
	return &ResourceClient[entity.Appointment]{client: client, collection: entity.CollectionAppointments}
}

func (r *ResourceClient[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/%s/", r.collection),
		public: r.publicList,
	}, &items)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *ResourceClient[T]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.client.do(ctx, request{method: http.MethodGet, path: r.itemPath(id)}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ResourceClient[T]) Create(ctx context.Context, payload any) (*T, error) {
	var item T
	err := r.client.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/%s", r.collection),
		body:   payload,
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ResourceClient[T]) Update(ctx context.Context, id int64, patch any) (*T, error) {
	var item T
	if err := r.client.do(ctx, request{method: http.MethodPatch, path: r.itemPath(id), body: patch}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ResourceClient[T]) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, request{method: http.MethodDelete, path: r.itemPath(id)}, nil)
}

func (r *ResourceClient[T]) itemPath(id int64) string {
	return fmt.Sprintf("/%s/%d", r.collection, id)
}

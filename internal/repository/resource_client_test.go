package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"clinic-manager/internal/domain/entity"
	"clinic-manager/pkg/apperror"
	"clinic-manager/pkg/session"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Session) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := newTestLogger()
	sess := session.New(log)
	return NewClient(server.URL, sess, log, WithHTTPClient(server.Client())), sess
}

func TestResourceClient_InjectsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		json.NewEncoder(w).Encode(entity.Patient{ID: 20, FirstName: "Ada", LastName: "Byron"})
	})
	require.NoError(t, sess.Login("secret-token"))

	patient, err := NewPatientRepository(client).Get(context.Background(), 20)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "/patients/20", gotPath)
	assert.Equal(t, "Ada", patient.FirstName)
}

func TestResourceClient_FailsFastWithoutToken(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, err := NewPatientRepository(client).List(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	err = NewDoctorRepository(client).Delete(context.Background(), 5)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)

	assert.Zero(t, atomic.LoadInt32(&calls), "no request may leave without a token")
}

func TestResourceClient_RefusesAfterLogout(t *testing.T) {
	var calls int32
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`[]`))
	})
	require.NoError(t, sess.Login("secret-token"))
	repo := NewAppointmentRepository(client)

	_, err := repo.List(context.Background())
	require.NoError(t, err)

	sess.Logout()
	_, err = repo.List(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResourceClient_DoctorListingIsPublic(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "/doctors/", r.URL.Path)
		w.Write([]byte(`[{"id":5,"first_name":"Gregory","last_name":"House","specialisation":"Podiatrist"}]`))
	})

	doctors, err := NewDoctorRepository(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, int64(5), doctors[0].ID)
}

func TestResourceClient_DecodesEpochDates(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":10,"appointment_date":1709942400,"doctor_id":5,"patient_id":20}`))
	})
	require.NoError(t, sess.Login("secret-token"))

	appt, err := NewAppointmentRepository(client).Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", appt.AppointmentDate.String())
	assert.True(t, appt.BelongsToDoctor(5))
}

func TestResourceClient_SendsPayloadAndMethod(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/doctors/5", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Dermatologist", body["specialisation"])
		w.Write([]byte(`{"id":5,"specialisation":"Dermatologist"}`))
	})
	require.NoError(t, sess.Login("secret-token"))

	doctor, err := NewDoctorRepository(client).Update(context.Background(), 5, map[string]string{"specialisation": "Dermatologist"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), doctor.ID)
}

func TestResourceClient_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantKind  apperror.Kind
		wantField string
		wantIssue []apperror.Issue
	}{
		{
			name:     "validation issues",
			status:   http.StatusUnprocessableEntity,
			body:     `{"error":{"issues":[{"path":["email"],"message":"Invalid email"},{"path":["phone",0],"message":"Too short"}]}}`,
			wantKind: apperror.KindValidation,
			wantIssue: []apperror.Issue{
				{Field: "email", Message: "Invalid email"},
				{Field: "phone", Message: "Too short"},
			},
		},
		{
			name:      "sqlite unique constraint",
			status:    http.StatusInternalServerError,
			body:      `{"message":"SQLITE_CONSTRAINT: SQLite error: UNIQUE constraint failed: doctors.phone"}`,
			wantKind:  apperror.KindUniqueViolation,
			wantField: "phone",
		},
		{
			name:      "postgres unique constraint",
			status:    http.StatusConflict,
			body:      `{"message":"duplicate key value violates unique constraint \"patients_email_key\""}`,
			wantKind:  apperror.KindUniqueViolation,
			wantField: "email",
		},
		{
			name:      "structured unique code",
			status:    http.StatusConflict,
			body:      `{"code":"unique_violation","field":"email"}`,
			wantKind:  apperror.KindUniqueViolation,
			wantField: "email",
		},
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Doctor not found"}`, wantKind: apperror.KindNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"Unauthorized"}`, wantKind: apperror.KindUnauthenticated},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantKind: apperror.KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			require.NoError(t, sess.Login("secret-token"))

			_, err := NewDoctorRepository(client).Create(context.Background(), map[string]string{})
			require.Error(t, err)

			var appErr *apperror.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.status, appErr.Status)
			assert.Equal(t, tt.wantField, appErr.Field)
			if tt.wantIssue != nil {
				assert.Equal(t, tt.wantIssue, appErr.Issues)
			}
		})
	}
}

func TestResourceClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	log := newTestLogger()
	client := NewClient(url, session.New(log), log)

	_, err := NewDoctorRepository(client).List(context.Background())
	assert.ErrorIs(t, err, apperror.ErrNetwork)
}

func TestAuthRepository_Login(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var creds credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "hunter22" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"token":"fresh-token"}`))
	})
	repo := NewAuthRepository(client, "/login", "/register")

	token, err := repo.Login(context.Background(), "staff@clinic.test", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)

	_, err = repo.Login(context.Background(), "staff@clinic.test", "wrong")
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestDependentsRepository_UsesNestedEndpoints(t *testing.T) {
	var paths []string
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`[]`))
	})
	require.NoError(t, sess.Login("secret-token"))
	repo := NewDependentsRepository(client)

	_, err := repo.AppointmentsOfDoctor(context.Background(), 5)
	require.NoError(t, err)
	_, err = repo.PatientsOfDoctor(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"/doctors/5/appointments", "/doctors/5/patients"}, paths)
}

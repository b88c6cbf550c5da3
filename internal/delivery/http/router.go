package http

import (
	"net/http"

	"clinic-manager/internal/delivery/http/handler"
	"clinic-manager/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	dashboardHandler   *handler.DashboardHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	activityHandler    *handler.ActivityHandler
	routeGuard         *middleware.RouteGuard
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	activityHandler *handler.ActivityHandler,
	routeGuard *middleware.RouteGuard,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		dashboardHandler:   dashboardHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		activityHandler:    activityHandler,
		routeGuard:         routeGuard,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public views
	r.router.HandleFunc("/", r.dashboardHandler.Home).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Everything below needs a session
	protected := r.router.PathPrefix("/").Subrouter()
	protected.Use(r.routeGuard.Protect)

	protected.HandleFunc("/activity", r.activityHandler.GetRecentActivity).Methods(http.MethodGet)

	// Doctors
	protected.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPatch)
	protected.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	protected.HandleFunc("/doctors/{id:[0-9]+}/edit", r.doctorHandler.EditDoctor).Methods(http.MethodGet)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.UpdatePatient).Methods(http.MethodPatch)
	protected.HandleFunc("/patients/{id:[0-9]+}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	protected.HandleFunc("/patients/{id:[0-9]+}/edit", r.patientHandler.EditPatient).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/appointments/options", r.appointmentHandler.GetFormOptions).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id:[0-9]+}/edit", r.appointmentHandler.EditAppointment).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

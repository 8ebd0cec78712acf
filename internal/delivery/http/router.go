package http

import (
	"net/http"

	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	healthHandler       *handler.HealthHandler
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	hospitalHandler     *handler.HospitalHandler
	departmentHandler   *handler.DepartmentHandler
	doctorHandler       *handler.DoctorHandler
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	revenueHandler      *handler.RevenueHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
}

type RouterConfig struct {
	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	HospitalHandler     *handler.HospitalHandler
	DepartmentHandler   *handler.DepartmentHandler
	DoctorHandler       *handler.DoctorHandler
	AvailabilityHandler *handler.AvailabilityHandler
	AppointmentHandler  *handler.AppointmentHandler
	RevenueHandler      *handler.RevenueHandler
	AuditLogHandler     *handler.AuditLogHandler
	AuthMiddleware      *middleware.AuthMiddleware
	CORSMiddleware      *middleware.CORSMiddleware
	LoggingMiddleware   *middleware.LoggingMiddleware
	MetricsMiddleware   *middleware.MetricsMiddleware
}

func NewRouter(cfg RouterConfig) *Router {
	return &Router{
		router:              mux.NewRouter(),
		healthHandler:       cfg.HealthHandler,
		authHandler:         cfg.AuthHandler,
		userHandler:         cfg.UserHandler,
		hospitalHandler:     cfg.HospitalHandler,
		departmentHandler:   cfg.DepartmentHandler,
		doctorHandler:       cfg.DoctorHandler,
		availabilityHandler: cfg.AvailabilityHandler,
		appointmentHandler:  cfg.AppointmentHandler,
		revenueHandler:      cfg.RevenueHandler,
		auditLogHandler:     cfg.AuditLogHandler,
		authMiddleware:      cfg.AuthMiddleware,
		corsMiddleware:      cfg.CORSMiddleware,
		loggingMiddleware:   cfg.LoggingMiddleware,
		metricsMiddleware:   cfg.MetricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Handle("/metrics", r.metricsMiddleware.Handler()).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)
	api.HandleFunc("/users/register", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", r.authHandler.Login).Methods(http.MethodPost)

	// Everything below requires a live session
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	r.setupUserRoutes(protected)
	r.setupHospitalRoutes(protected)
	r.setupDepartmentRoutes(protected)
	r.setupDoctorRoutes(protected)
	r.setupAvailabilityRoutes(protected)
	r.setupAppointmentRoutes(protected)

	admin := protected.PathPrefix("/audit-logs").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// preflight requests only need the CORS headers; a MatcherFunc keeps
	// unknown paths answering 404 instead of 405
	r.router.MatcherFunc(isPreflight).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) setupUserRoutes(protected *mux.Router) {
	protected.HandleFunc("/users/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/users/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	adminOnly := protected.PathPrefix("/users").Subrouter()
	adminOnly.Use(middleware.RequireAdmin)
	adminOnly.HandleFunc("", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	adminOnly.HandleFunc("/doctors", r.userHandler.GetDoctors).Methods(http.MethodGet)
	adminOnly.HandleFunc("/patients", r.userHandler.GetPatients).Methods(http.MethodGet)
	adminOnly.HandleFunc("/admins", r.userHandler.GetAdmins).Methods(http.MethodGet)

	self := protected.PathPrefix("/users/{id}").Subrouter()
	self.Use(middleware.RequireSelfOrAdmin("id"))
	self.HandleFunc("", r.userHandler.GetUser).Methods(http.MethodGet)
	self.HandleFunc("", r.userHandler.UpdateUser).Methods(http.MethodPut)
	self.HandleFunc("", r.userHandler.DeleteUser).Methods(http.MethodDelete)
}

func (r *Router) setupHospitalRoutes(protected *mux.Router) {
	protected.HandleFunc("/hospitals", r.hospitalHandler.GetAllHospitals).Methods(http.MethodGet)
	protected.HandleFunc("/hospitals/{id}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)
	protected.HandleFunc("/hospitals/{id}/doctors", r.hospitalHandler.GetHospitalDoctors).Methods(http.MethodGet)

	admin := protected.PathPrefix("/hospitals").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("", r.hospitalHandler.CreateHospital).Methods(http.MethodPost)
	admin.HandleFunc("/{id}", r.hospitalHandler.UpdateHospital).Methods(http.MethodPut)
	admin.HandleFunc("/{id}", r.hospitalHandler.DeleteHospital).Methods(http.MethodDelete)
	admin.HandleFunc("/{id}/force-delete", r.hospitalHandler.ForceDeleteHospital).Methods(http.MethodDelete)
	admin.HandleFunc("/{id}/dashboard", r.revenueHandler.GetHospitalDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/{id}/revenue", r.revenueHandler.GetHospitalRevenue).Methods(http.MethodGet)
	admin.HandleFunc("/{id}/revenue/doctors", r.revenueHandler.GetHospitalRevenueByDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/{id}/revenue/departments", r.revenueHandler.GetHospitalRevenueByDepartments).Methods(http.MethodGet)
}

func (r *Router) setupDepartmentRoutes(protected *mux.Router) {
	// literal segments first so they are not captured by {id}
	protected.HandleFunc("/departments", r.departmentHandler.GetAllDepartments).Methods(http.MethodGet)
	protected.HandleFunc("/departments/unique-names", r.departmentHandler.GetUniqueNames).Methods(http.MethodGet)
	protected.HandleFunc("/departments/hospital/{hospitalId}", r.departmentHandler.GetDepartmentsByHospital).Methods(http.MethodGet)
	protected.HandleFunc("/departments/{id}", r.departmentHandler.GetDepartment).Methods(http.MethodGet)

	admin := protected.PathPrefix("/departments").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("", r.departmentHandler.CreateDepartment).Methods(http.MethodPost)
	admin.HandleFunc("/{id}", r.departmentHandler.UpdateDepartment).Methods(http.MethodPut)
	admin.HandleFunc("/{id}", r.departmentHandler.DeleteDepartment).Methods(http.MethodDelete)
}

func (r *Router) setupDoctorRoutes(protected *mux.Router) {
	protected.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}/hospitals", r.doctorHandler.GetDoctorHospitals).Methods(http.MethodGet)

	staff := protected.PathPrefix("/doctors/{id}").Subrouter()
	staff.Use(middleware.RequireAdminOrDoctor)
	staff.HandleFunc("/earnings", r.revenueHandler.GetDoctorEarnings).Methods(http.MethodGet)
	staff.HandleFunc("/dashboard", r.revenueHandler.GetDoctorDashboard).Methods(http.MethodGet)
	staff.HandleFunc("/associate-hospital", r.doctorHandler.AssociateHospital).Methods(http.MethodPost)
	staff.HandleFunc("/consultation-fee", r.doctorHandler.UpdateConsultationFee).Methods(http.MethodPut)
}

func (r *Router) setupAvailabilityRoutes(protected *mux.Router) {
	protected.HandleFunc("/availability", r.availabilityHandler.GetAllAvailability).Methods(http.MethodGet)
	protected.HandleFunc("/availability/doctor/{doctorId}", r.availabilityHandler.GetByDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/availability/hospital/{hospitalId}", r.availabilityHandler.GetByHospital).Methods(http.MethodGet)
	protected.HandleFunc("/availability/doctor/{doctorId}/hospital/{hospitalId}", r.availabilityHandler.GetByDoctorAndHospital).Methods(http.MethodGet)
	protected.HandleFunc("/availability/{id}", r.availabilityHandler.GetAvailability).Methods(http.MethodGet)

	staff := protected.PathPrefix("/availability").Subrouter()
	staff.Use(middleware.RequireAdminOrDoctor)
	staff.HandleFunc("", r.availabilityHandler.CreateAvailability).Methods(http.MethodPost)
	staff.HandleFunc("/{id}", r.availabilityHandler.UpdateAvailability).Methods(http.MethodPut)
	staff.HandleFunc("/{id}", r.availabilityHandler.DeleteAvailability).Methods(http.MethodDelete)
}

func (r *Router) setupAppointmentRoutes(protected *mux.Router) {
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/patient/{patientId}", r.appointmentHandler.GetByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/doctor/{doctorId}", r.appointmentHandler.GetByDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/hospital/{hospitalId}", r.appointmentHandler.GetByHospital).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)

	booking := protected.PathPrefix("/appointments").Subrouter()
	booking.Use(middleware.RequireAdminOrPatient)
	booking.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	booking.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	booking.HandleFunc("/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
}

func isPreflight(req *http.Request, _ *mux.RouteMatch) bool {
	return req.Method == http.MethodOptions
}

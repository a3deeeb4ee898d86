package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backoffice/internal/security"
	"carrental-backoffice/internal/service"
)

// Handlers bundles the HTTP handler dependencies for route registration
type Handlers struct {
	Auth     service.AuthService
	Rental   service.RentalService
	Car      service.CarService
	Customer service.CustomerService
	Report   service.ReportService
	Tokens   security.TokenManager
}

// NewRouter wires the full API surface. Everything except login sits
// behind bearer-token auth; fleet mutations additionally require a role
// that can manage the fleet.
func NewRouter(h *Handlers) *mux.Router {
	router := mux.NewRouter()

	authHandler := NewAuthHandler(h.Auth)
	rentalHandler := NewRentalHandler(h.Rental)
	carHandler := NewCarHandler(h.Car)
	customerHandler := NewCustomerHandler(h.Customer)
	reportHandler := NewReportHandler(h.Report)
	authMW := NewAuthMiddleware(h.Tokens)

	router.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods(http.MethodPost)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMW.RequireAuth)

	api.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/cars", authMW.RequireFleetManagement(carHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/cars/status", authMW.RequireFleetManagement(carHandler.UpdateStatus)).Methods(http.MethodPost)
	api.HandleFunc("/cars", carHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id}/maintenance", carHandler.MaintenanceHistory).Methods(http.MethodGet)

	api.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)

	api.HandleFunc("/reports/revenue", reportHandler.Revenue).Methods(http.MethodGet)
	api.HandleFunc("/reports/utilization", reportHandler.Utilization).Methods(http.MethodGet)
	api.HandleFunc("/reports/overdue", reportHandler.Overdue).Methods(http.MethodGet)
	api.HandleFunc("/reports/top-customers", reportHandler.TopCustomers).Methods(http.MethodGet)
	api.HandleFunc("/reports/maintenance", reportHandler.Maintenance).Methods(http.MethodGet)
	api.HandleFunc("/reports/car-status", reportHandler.CarStatus).Methods(http.MethodGet)

	return router
}

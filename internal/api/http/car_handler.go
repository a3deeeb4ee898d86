package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backoffice/internal/service"
)

// CarHandler handles fleet endpoints
type CarHandler struct {
	carService service.CarService
}

func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	outcome := h.carService.CreateCar(r.Context(), r.PostForm)
	status := http.StatusOK
	if !outcome.Success {
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, outcome)
}

// UpdateStatus always answers 204: the underlying action reports nothing,
// failures are visible in the logs only.
func (h *CarHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	h.carService.UpdateCarStatus(r.Context(), r.PostForm)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carService.ListCars(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list cars")
		return
	}
	respondJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) MaintenanceHistory(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	records, err := h.carService.MaintenanceHistory(r.Context(), carID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load maintenance history")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

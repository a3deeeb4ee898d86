package http

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backoffice/internal/service"
)

// RentalHandler handles rental contract endpoints
type RentalHandler struct {
	rentalService service.RentalService
}

func NewRentalHandler(rentalService service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

// Create accepts the contract creation form and reports the workflow
// outcome. The outcome is JSON either way; only a malformed body is a
// transport-level error.
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	outcome := h.rentalService.CreateRental(r.Context(), r.PostForm)
	status := http.StatusOK
	if !outcome.Success {
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, outcome)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.rentalService.ListRentals(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list rentals")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	contract, payments, err := h.rentalService.GetRental(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "rental contract not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load rental")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"contract": contract,
		"payments": payments,
	})
}

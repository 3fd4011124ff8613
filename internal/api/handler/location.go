package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Ed1196/Dawn-REST-API/internal/api/response"
	"github.com/Ed1196/Dawn-REST-API/internal/model"
	"github.com/Ed1196/Dawn-REST-API/internal/services/location"
)

// LocationHandler handles location lookup endpoints
type LocationHandler struct {
	locations *location.Controller
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locations *location.Controller) *LocationHandler {
	return &LocationHandler{
		locations: locations,
	}
}

// Get handles GET /api/v1/locations/{id}
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.LocationID(mux.Vars(r)["id"])

	l, err := h.locations.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	occupants, err := h.locations.Occupants(r.Context(), l)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LocationFromModel(l, occupants))
}

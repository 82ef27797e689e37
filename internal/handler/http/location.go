package http

import (
	"encoding/json"
	"net/http"

	"github.com/iajwork/smart-attendance-platform/internal/domain/location"
	"github.com/iajwork/smart-attendance-platform/internal/handler/http/response"
)

type LocationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	locationService location.LocationService
}

func NewLocationHandler(locationService location.LocationService) LocationHandler {
	return &locationHandlerImpl{
		locationService: locationService,
	}
}

// Create implements LocationHandler.
func (h *locationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req location.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.locationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location created", result)
}

// List implements LocationHandler.
func (h *locationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.locationService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

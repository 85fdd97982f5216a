package restaurant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hctsai/lunchgo/pkg/response"
)

// Handler handles HTTP requests for restaurant operations
type Handler struct {
	service *Service
}

// NewHandler creates a new restaurant handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for restaurant endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Save)

	return r
}

// List handles GET /restaurants
// @Summary      List saved restaurants
// @Tags         restaurants
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Restaurant}
// @Router       /restaurants [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list restaurants")
		return
	}

	response.JSON(w, http.StatusOK, restaurants)
}

// Save handles POST /restaurants
// @Summary      Create or update a restaurant
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Param        request body Restaurant true "Restaurant"
// @Success      200 {object} response.APIResponse{data=Restaurant}
// @Failure      400 {object} response.APIResponse
// @Router       /restaurants [post]
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var rest Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	saved, err := h.service.Save(r.Context(), &rest)
	if err != nil {
		if errors.Is(err, ErrInvalidRestaurant) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to save restaurant")
		return
	}

	response.JSON(w, http.StatusOK, saved)
}

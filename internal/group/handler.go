package group

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hctsai/lunchgo/internal/order"
	"github.com/hctsai/lunchgo/pkg/response"
)

// Handler handles HTTP requests for the /groups tree, including the order
// endpoints nested under a group.
type Handler struct {
	service *Service
	orders  *order.Service
}

// NewHandler creates a new group handler
func NewHandler(service *Service, orders *order.Service) *Handler {
	return &Handler{service: service, orders: orders}
}

// Routes returns the router for group and nested order endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}/deadline", h.UpdateDeadline)

	r.Post("/{id}/orders", h.AddOrder)
	r.Delete("/{id}/orders/{orderID}", h.DeleteOrder)
	r.Patch("/{id}/orders/{orderID}/paid", h.UpdateOrderPaid)

	return r
}

// Create handles POST /groups
// @Summary      Open a new ordering group
// @Description  Rejected with 409 while a previous group is still open
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group creation request"
// @Success      201 {object} response.APIResponse{data=Group}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /groups [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	g, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidGroup):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrGroupStillOpen):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to create group")
		}
		return
	}

	response.JSON(w, http.StatusCreated, g)
}

// List handles GET /groups
// @Summary      List all groups
// @Tags         groups
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Group}
// @Router       /groups [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list groups")
		return
	}

	response.JSON(w, http.StatusOK, groups)
}

// GetByID handles GET /groups/{id}
// @Summary      Get a group with its orders
// @Tags         groups
// @Produce      json
// @Param        id path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=DetailResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	g, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, "Group not found")
			return
		}
		response.InternalError(w, "Failed to get group")
		return
	}

	orders, err := h.orders.ListByGroup(r.Context(), id)
	if err != nil {
		response.InternalError(w, "Failed to list orders")
		return
	}

	response.JSON(w, http.StatusOK, &DetailResponse{Group: g, Orders: orders})
}

// UpdateDeadline handles PATCH /groups/{id}/deadline
// @Summary      Amend a group's deadline
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        request body UpdateDeadlineRequest true "New deadline"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/deadline [patch]
func (h *Handler) UpdateDeadline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.UpdateDeadline(r.Context(), id, req.Deadline); err != nil {
		switch {
		case errors.Is(err, ErrInvalidGroup):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrGroupNotFound):
			response.NotFound(w, "Group not found")
		default:
			response.InternalError(w, "Failed to update deadline")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Deadline updated successfully"})
}

// AddOrder handles POST /groups/{id}/orders
// @Summary      Add an order to a group
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        request body order.CreateOrderRequest true "Order"
// @Success      201 {object} response.APIResponse{data=order.Order}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/orders [post]
func (h *Handler) AddOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.service.Get(r.Context(), id); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, "Group not found")
			return
		}
		response.InternalError(w, "Failed to load group")
		return
	}

	var req order.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	o, err := h.orders.Add(r.Context(), req.ToOrder(id))
	if err != nil {
		if errors.Is(err, order.ErrInvalidOrder) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add order")
		return
	}

	response.JSON(w, http.StatusCreated, o)
}

// DeleteOrder handles DELETE /groups/{id}/orders/{orderID}
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        orderID path string true "Order ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/orders/{orderID} [delete]
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	orderID := chi.URLParam(r, "orderID")

	if err := h.orders.Delete(r.Context(), id, orderID); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			response.NotFound(w, "Order not found")
			return
		}
		response.InternalError(w, "Failed to delete order")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Order deleted"})
}

// UpdateOrderPaid handles PATCH /groups/{id}/orders/{orderID}/paid
// @Summary      Update an order's paid status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Group ID"
// @Param        orderID path string true "Order ID"
// @Param        request body order.UpdatePaidRequest true "Paid flag"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /groups/{id}/orders/{orderID}/paid [patch]
func (h *Handler) UpdateOrderPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	orderID := chi.URLParam(r, "orderID")

	var req order.UpdatePaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.orders.SetPaid(r.Context(), id, orderID, req.Paid); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			response.NotFound(w, "Order not found")
			return
		}
		response.InternalError(w, "Failed to update payment status")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Payment status updated"})
}

package group

import "github.com/hctsai/lunchgo/internal/order"

// CreateGroupRequest represents the request to open a new ordering group
type CreateGroupRequest struct {
	Name            string     `json:"name"`
	Deadline        string     `json:"deadline"`
	Menu            []MenuItem `json:"menu,omitempty"`
	RestaurantName  string     `json:"restaurantName,omitempty"`
	MenuImageURL    string     `json:"menuImageUrl,omitempty"`
	Note            string     `json:"note,omitempty"`
	RestaurantPhone string     `json:"restaurantPhone,omitempty"`
}

// UpdateDeadlineRequest represents the request to amend a group's deadline
type UpdateDeadlineRequest struct {
	Deadline string `json:"deadline"`
}

// DetailResponse is a group together with all of its orders, live and
// archived.
type DetailResponse struct {
	Group  *Group         `json:"group"`
	Orders []*order.Order `json:"orders"`
}

package order

// CreateOrderRequest represents the request to add an order to a group
type CreateOrderRequest struct {
	UserName  string    `json:"userName"`
	ItemName  string    `json:"itemName"`
	BasePrice int       `json:"basePrice"`
	RiceLevel RiceLevel `json:"riceLevel,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// ToOrder converts the request into an unsaved order for the given group.
// Quantity, total price, id and timestamps are filled in by the service.
func (r *CreateOrderRequest) ToOrder(groupID string) *Order {
	return &Order{
		GroupID:   groupID,
		UserName:  r.UserName,
		ItemName:  r.ItemName,
		BasePrice: r.BasePrice,
		RiceLevel: r.RiceLevel,
		Quantity:  r.Quantity,
		Note:      r.Note,
	}
}

// UpdatePaidRequest represents the request to set an order's paid flag
type UpdatePaidRequest struct {
	Paid bool `json:"paid"`
}

package order

// RiceLevel selects the rice portion of an order. It changes the display
// label only, never the price.
type RiceLevel string

const (
	RiceFull RiceLevel = "FULL"
	RiceHalf RiceLevel = "HALF"
	RiceLess RiceLevel = "LESS"
)

// Label returns the display suffix for the rice level. A full portion has
// no suffix.
func (r RiceLevel) Label() string {
	switch r {
	case RiceHalf:
		return "飯半"
	case RiceLess:
		return "飯少"
	default:
		return ""
	}
}

// Order is one participant's order inside a group.
type Order struct {
	ID         string    `json:"id"`
	GroupID    string    `json:"groupId"`
	UserName   string    `json:"userName"`
	ItemName   string    `json:"itemName"`
	BasePrice  int       `json:"basePrice"`
	RiceLevel  RiceLevel `json:"riceLevel"`
	Quantity   int       `json:"quantity"`
	TotalPrice int       `json:"totalPrice"`
	Note       string    `json:"note"`
	CreatedAt  string    `json:"createdAt"`
	Paid       bool      `json:"paid"`
}

// ItemKey groups orders for summaries and statistics: the item name plus
// the rice label when one applies.
func (o *Order) ItemKey() string {
	if label := o.RiceLevel.Label(); label != "" {
		return o.ItemName + " " + label
	}
	return o.ItemName
}

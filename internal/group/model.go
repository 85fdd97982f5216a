package group

// MenuItem is one orderable dish. Prices are integers in the smallest
// currency unit; immutable once persisted.
type MenuItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Group is one ordering round with a shared deadline. A group is never
// deleted; it is superseded when the next group opens, which archives its
// orders. Deadline and CreatedAt are stored as strings because rows written
// by earlier versions carry several timestamp formats.
type Group struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Deadline        string     `json:"deadline"`
	CreatedAt       string     `json:"createdAt"`
	Menu            []MenuItem `json:"menu,omitempty"`
	RestaurantName  string     `json:"restaurantName,omitempty"`
	MenuImageURL    string     `json:"menuImageUrl,omitempty"`
	Note            string     `json:"note,omitempty"`
	RestaurantPhone string     `json:"restaurantPhone,omitempty"`
}

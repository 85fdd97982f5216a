package restaurant

import "github.com/hctsai/lunchgo/internal/group"

// Restaurant is an independently saved store whose menu can be reused
// across groups.
type Restaurant struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Menu         []group.MenuItem `json:"menu"`
	MenuImageURL string           `json:"menuImageUrl,omitempty"`
}

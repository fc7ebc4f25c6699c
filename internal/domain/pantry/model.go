package pantry

// Ingredient categories form a closed set.
const (
	CategoryStaple    = "staple"
	CategorySeasoning = "seasoning"
)

// Ingredient is one pantry entry. A nil Quantity means the amount is not
// tracked (condiments bought once and used indefinitely).
type Ingredient struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Quantity          *float64 `json:"quantity"`
	Unit              string   `json:"unit"`
	Price             float64  `json:"price"`
	Category          string   `json:"category"`
	LowStockThreshold float64  `json:"low_stock_threshold"`
	Icon              string   `json:"icon,omitempty"`
}

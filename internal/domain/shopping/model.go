package shopping

// Item is one shopping-list row. Price is what the user expects (or noted) to
// pay; checkout sums the checked prices into a single purchase record.
type Item struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Checked bool    `json:"checked"`
	Price   float64 `json:"price,omitempty"`
}

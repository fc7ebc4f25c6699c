package ledger

// Record types. "purchase" comes from shopping-list checkouts and confirmed
// bookkeeping entries, "cooking" marks a finished dish from the cooking queue.
const (
	TypePurchase = "purchase"
	TypeCooking  = "cooking"
)

// The four fixed budget categories.
const (
	CategoryEat  = "eat"
	CategoryLife = "life"
	CategoryRent = "rent"
	CategoryPlay = "play"
)

// BudgetCategories lists the fixed categories in display order.
var BudgetCategories = []string{CategoryEat, CategoryLife, CategoryRent, CategoryPlay}

// Record is one ledger entry. Date is a calendar day (2006-01-02) and Time a
// local clock string (15:04). Amount is non-negative; zero is valid (cooking
// milestones carry no direct cost).
type Record struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	Icon        string  `json:"icon,omitempty"`
}

// Budgets holds the configured monthly budget and its split across the four
// fixed categories.
type Budgets struct {
	Monthly    float64            `json:"monthly"`
	ByCategory map[string]float64 `json:"by_category"`
}

// Summary is the derived view of the current budget cycle. It is recomputed
// on every read, never cached.
type Summary struct {
	From          string             `json:"from"`
	To            string             `json:"to"`
	TotalSpend    float64            `json:"total_spend"`
	ByCategory    map[string]float64 `json:"by_category"`
	DailyAverage  float64            `json:"daily_average"`
	MonthlyBudget float64            `json:"monthly_budget"`
	Remaining     float64            `json:"remaining"`
}

const (
	defaultMonthlyBudget = 2000
)

func defaultCategoryBudgets() map[string]float64 {
	return map[string]float64{
		CategoryEat:  1000,
		CategoryLife: 500,
		CategoryRent: 0,
		CategoryPlay: 500,
	}
}

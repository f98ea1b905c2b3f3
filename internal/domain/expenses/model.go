package expenses

// Expense categories. Bazar rows are written by inventory purchases;
// Staff Food and Manager Salary are the once-per-day fixed costs.
const (
	CategoryBazar         = "Bazar"
	CategoryStaffFood     = "Staff Food"
	CategoryManagerSalary = "Manager Salary"
	CategoryRent          = "Rent"
	CategoryGas           = "Gas"
	CategoryWater         = "Water"
	CategoryUtility       = "Utility"
	CategorySalary        = "Salary"
	CategoryOthers        = "Others"
)

// AdHocCategories are the ones the expense manager offers directly.
// Bazar and the fixed daily categories are written by their own flows,
// never by hand.
var AdHocCategories = []string{
	CategoryRent, CategoryGas, CategoryWater,
	CategoryUtility, CategorySalary, CategoryOthers,
}

// IsAdHocCategory reports whether the category may be entered through
// the expense manager.
func IsAdHocCategory(c string) bool {
	for _, a := range AdHocCategories {
		if a == c {
			return true
		}
	}
	return false
}

type Expense struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
}

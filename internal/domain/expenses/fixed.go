package expenses

// Default fixed daily amounts, overridable through config.
const (
	DefaultStaffFood     = 100
	DefaultManagerSalary = 450
)

// FixedDaily builds the list of fixed costs the operator asked to apply.
// Idempotency per (date, category) is enforced by the store.
func FixedDaily(staffFood, managerSalary bool, staffAmount, managerAmount float64) []FixedCost {
	var out []FixedCost
	if staffFood {
		out = append(out, FixedCost{Category: CategoryStaffFood, Amount: staffAmount})
	}
	if managerSalary {
		out = append(out, FixedCost{Category: CategoryManagerSalary, Amount: managerAmount})
	}
	return out
}

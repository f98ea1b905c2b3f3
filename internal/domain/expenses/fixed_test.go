package expenses

import "testing"

func TestFixedDaily(t *testing.T) {
	cases := []struct {
		staff, manager bool
		want           []string
	}{
		{false, false, nil},
		{true, false, []string{CategoryStaffFood}},
		{false, true, []string{CategoryManagerSalary}},
		{true, true, []string{CategoryStaffFood, CategoryManagerSalary}},
	}
	for _, tc := range cases {
		got := FixedDaily(tc.staff, tc.manager, DefaultStaffFood, DefaultManagerSalary)
		if len(got) != len(tc.want) {
			t.Errorf("FixedDaily(%v,%v) = %+v, want categories %v", tc.staff, tc.manager, got, tc.want)
			continue
		}
		for i, fc := range got {
			if fc.Category != tc.want[i] {
				t.Errorf("FixedDaily(%v,%v)[%d] = %q, want %q", tc.staff, tc.manager, i, fc.Category, tc.want[i])
			}
		}
	}
}

func TestIsAdHocCategory(t *testing.T) {
	for _, c := range AdHocCategories {
		if !IsAdHocCategory(c) {
			t.Errorf("IsAdHocCategory(%q) = false", c)
		}
	}
	for _, c := range []string{CategoryBazar, CategoryStaffFood, CategoryManagerSalary, "", "Snacks"} {
		if IsAdHocCategory(c) {
			t.Errorf("IsAdHocCategory(%q) = true", c)
		}
	}
}

func TestFixedDailyAmounts(t *testing.T) {
	got := FixedDaily(true, true, DefaultStaffFood, DefaultManagerSalary)
	if got[0].Amount != 100 || got[1].Amount != 450 {
		t.Errorf("amounts = %v/%v, want 100/450", got[0].Amount, got[1].Amount)
	}
}

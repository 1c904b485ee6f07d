package models

// MonthlyTotal is one point of the income/expense chart. Month is a
// human-readable month name; out-of-range month numbers map to
// "Invalid Month Number". Ordering follows whatever the store produced.
type MonthlyTotal struct {
	Month string `json:"month"`
	Total int    `json:"total"`
}

// DashboardStats carries everything the dashboard page renders.
type DashboardStats struct {
	TotalTrainees     int            `json:"total_trainees"`
	NewTrainees       int            `json:"new_trainees"`
	TotalCourses      int            `json:"total_courses"`
	TotalFacilitators int            `json:"total_facilitators"`
	FeesCollected     int            `json:"fees_collected"`
	TraineeIncrease   string         `json:"trainee_increase"`
	FeeIncrease       string         `json:"fee_increase"`
	IncomeData        []MonthlyTotal `json:"income_data"`
	ExpenseData       []MonthlyTotal `json:"expense_data"`
}

package models

type Department struct {
	ID             int    `json:"id"`
	DepartmentName string `json:"department_name" validate:"required"`
	DepartmentHead string `json:"department_head"`
	MobileNumber   string `json:"mobile_number"`
	Email          string `json:"email" validate:"omitempty,email"`
}

package models

import "time"

// InventoryItem is a purchased asset. PurchaseDate and Price feed the
// expense side of the dashboard chart.
type InventoryItem struct {
	ID            int       `json:"id"`
	ItemName      string    `json:"item_name" validate:"required"`
	CourseFor     string    `json:"course_for" validate:"required"`
	DepartmentFor string    `json:"department_for" validate:"required"`
	Price         int       `json:"price" validate:"required"`
	PurchaseDate  time.Time `json:"purchase_date" validate:"required"`
	Status        string    `json:"status" validate:"required"`
	ItemDetails   string    `json:"item_details" validate:"required"`
}

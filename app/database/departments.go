package database

import (
	"database/sql"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

func CreateDepartment(db *sql.DB, d *models.Department) error {
	query := `INSERT INTO departments (department_name, department_head, mobile_number, email)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	return db.QueryRow(query,
		d.DepartmentName, d.DepartmentHead, d.MobileNumber, d.Email,
	).Scan(&d.ID)
}

func GetAllDepartments(db *sql.DB) ([]*models.Department, error) {
	query := `SELECT id, department_name, COALESCE(department_head, ''), COALESCE(mobile_number, ''), COALESCE(email, '')
			  FROM departments ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		d := &models.Department{}
		if err := rows.Scan(&d.ID, &d.DepartmentName, &d.DepartmentHead, &d.MobileNumber, &d.Email); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func GetDepartmentByID(db *sql.DB, id int) (*models.Department, error) {
	d := &models.Department{}
	query := `SELECT id, department_name, COALESCE(department_head, ''), COALESCE(mobile_number, ''), COALESCE(email, '')
			  FROM departments WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&d.ID, &d.DepartmentName, &d.DepartmentHead, &d.MobileNumber, &d.Email)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return d, nil
}

func UpdateDepartment(db *sql.DB, d *models.Department) error {
	query := `UPDATE departments
			  SET department_name = $1, department_head = $2, mobile_number = $3, email = $4
			  WHERE id = $5`

	result, err := db.Exec(query, d.DepartmentName, d.DepartmentHead, d.MobileNumber, d.Email, d.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func DeleteDepartment(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM departments WHERE id = $1`, id)
	return err
}

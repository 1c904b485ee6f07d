package database

import (
	"database/sql"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

func CreateFacilitator(db *sql.DB, f *models.Facilitator) error {
	query := `INSERT INTO facilitators (first_name, last_name, email, joining_date, mobile_number, gender, course, department)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`

	return db.QueryRow(query,
		f.FirstName, f.LastName, f.Email, f.JoiningDate, f.MobileNumber,
		f.Gender, f.Course, f.Department,
	).Scan(&f.ID)
}

func GetAllFacilitators(db *sql.DB) ([]*models.Facilitator, error) {
	query := `SELECT id, first_name, last_name, COALESCE(email, ''), COALESCE(joining_date, '0001-01-01'),
			  COALESCE(mobile_number, ''), gender, COALESCE(course, ''), department
			  FROM facilitators ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facilitators := []*models.Facilitator{}
	for rows.Next() {
		f := &models.Facilitator{}
		if err := rows.Scan(
			&f.ID, &f.FirstName, &f.LastName, &f.Email, &f.JoiningDate,
			&f.MobileNumber, &f.Gender, &f.Course, &f.Department,
		); err != nil {
			return nil, err
		}
		facilitators = append(facilitators, f)
	}
	return facilitators, rows.Err()
}

func GetFacilitatorByID(db *sql.DB, id int) (*models.Facilitator, error) {
	f := &models.Facilitator{}
	query := `SELECT id, first_name, last_name, COALESCE(email, ''), COALESCE(joining_date, '0001-01-01'),
			  COALESCE(mobile_number, ''), gender, COALESCE(course, ''), department
			  FROM facilitators WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&f.ID, &f.FirstName, &f.LastName, &f.Email, &f.JoiningDate,
		&f.MobileNumber, &f.Gender, &f.Course, &f.Department,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return f, nil
}

func UpdateFacilitator(db *sql.DB, f *models.Facilitator) error {
	query := `UPDATE facilitators
			  SET first_name = $1, last_name = $2, email = $3, joining_date = $4,
			      mobile_number = $5, gender = $6, course = $7, department = $8
			  WHERE id = $9`

	result, err := db.Exec(query,
		f.FirstName, f.LastName, f.Email, f.JoiningDate, f.MobileNumber,
		f.Gender, f.Course, f.Department, f.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func DeleteFacilitator(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM facilitators WHERE id = $1`, id)
	return err
}

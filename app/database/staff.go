package database

import (
	"database/sql"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

func CreateStaff(db *sql.DB, s *models.Staff) error {
	query := `INSERT INTO staffs (first_name, last_name, email, joining_date, mobile_number, gender, designation, department, address)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`

	return db.QueryRow(query,
		s.FirstName, s.LastName, s.Email, s.JoiningDate, s.MobileNumber,
		s.Gender, s.Designation, s.Department, s.Address,
	).Scan(&s.ID)
}

func GetAllStaff(db *sql.DB) ([]*models.Staff, error) {
	query := `SELECT id, first_name, last_name, COALESCE(email, ''), COALESCE(joining_date, '0001-01-01'),
			  COALESCE(mobile_number, ''), COALESCE(gender, ''), COALESCE(designation, ''),
			  COALESCE(department, ''), COALESCE(address, '')
			  FROM staffs ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := []*models.Staff{}
	for rows.Next() {
		s := &models.Staff{}
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.JoiningDate,
			&s.MobileNumber, &s.Gender, &s.Designation, &s.Department, &s.Address,
		); err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func GetStaffByID(db *sql.DB, id int) (*models.Staff, error) {
	s := &models.Staff{}
	query := `SELECT id, first_name, last_name, COALESCE(email, ''), COALESCE(joining_date, '0001-01-01'),
			  COALESCE(mobile_number, ''), COALESCE(gender, ''), COALESCE(designation, ''),
			  COALESCE(department, ''), COALESCE(address, '')
			  FROM staffs WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.JoiningDate,
		&s.MobileNumber, &s.Gender, &s.Designation, &s.Department, &s.Address,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return s, nil
}

func UpdateStaff(db *sql.DB, s *models.Staff) error {
	query := `UPDATE staffs
			  SET first_name = $1, last_name = $2, email = $3, joining_date = $4, mobile_number = $5,
			      gender = $6, designation = $7, department = $8, address = $9
			  WHERE id = $10`

	result, err := db.Exec(query,
		s.FirstName, s.LastName, s.Email, s.JoiningDate, s.MobileNumber,
		s.Gender, s.Designation, s.Department, s.Address, s.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func DeleteStaff(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM staffs WHERE id = $1`, id)
	return err
}

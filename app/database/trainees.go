package database

import (
	"database/sql"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

// CreateTrainee inserts the trainee and bumps the enrolled counter of the
// course in the same transaction. The counter update is an atomic in-place
// increment so two simultaneous enrollments cannot lose a count. A trainee
// naming an unknown course is still inserted; there is simply no counter
// to bump.
func CreateTrainee(db *sql.DB, trainee *models.Trainee) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE courses SET students_enrolled = students_enrolled + 1 WHERE course_name = $1`,
		trainee.Course,
	); err != nil {
		return err
	}

	query := `INSERT INTO trainees (first_name, last_name, email, registration_date, department, gender, mobile_number, course, address)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	if err := tx.QueryRow(query,
		trainee.FirstName, trainee.LastName, trainee.Email, trainee.RegistrationDate,
		trainee.Department, trainee.Gender, trainee.MobileNumber, trainee.Course, trainee.Address,
	).Scan(&trainee.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func GetAllTrainees(db *sql.DB) ([]*models.Trainee, error) {
	query := `SELECT id, first_name, last_name, email, registration_date, department, gender,
			  COALESCE(mobile_number, ''), course, COALESCE(address, '')
			  FROM trainees ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainees := []*models.Trainee{}
	for rows.Next() {
		t := &models.Trainee{}
		if err := rows.Scan(
			&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.RegistrationDate,
			&t.Department, &t.Gender, &t.MobileNumber, &t.Course, &t.Address,
		); err != nil {
			return nil, err
		}
		trainees = append(trainees, t)
	}
	return trainees, rows.Err()
}

func GetTraineeByID(db *sql.DB, id int) (*models.Trainee, error) {
	t := &models.Trainee{}
	query := `SELECT id, first_name, last_name, email, registration_date, department, gender,
			  COALESCE(mobile_number, ''), course, COALESCE(address, '')
			  FROM trainees WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.RegistrationDate,
		&t.Department, &t.Gender, &t.MobileNumber, &t.Course, &t.Address,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return t, nil
}

// UpdateTrainee overwrites every editable field. Editing the course does
// not move the enrolled counters; this matches the incremental-only
// counter semantics.
func UpdateTrainee(db *sql.DB, trainee *models.Trainee) error {
	query := `UPDATE trainees
			  SET first_name = $1, last_name = $2, email = $3, registration_date = $4,
			      department = $5, gender = $6, mobile_number = $7, course = $8, address = $9
			  WHERE id = $10`

	result, err := db.Exec(query,
		trainee.FirstName, trainee.LastName, trainee.Email, trainee.RegistrationDate,
		trainee.Department, trainee.Gender, trainee.MobileNumber, trainee.Course,
		trainee.Address, trainee.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// DeleteTrainee hard-deletes the row. The course's enrolled counter is
// left untouched; deletion never fails because of counter state.
func DeleteTrainee(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM trainees WHERE id = $1`, id)
	return err
}

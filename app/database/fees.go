package database

import (
	"database/sql"
	"errors"

	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

// ErrInvoiceNumberTaken is returned when an insert collides with the
// unique invoice_number constraint and cannot be resolved.
var ErrInvoiceNumberTaken = errors.New("this invoice number is already in use")

// CreateFee assigns an invoice number and inserts the fee in one
// transaction, holding invoiceMu for the whole assign+insert step. An
// auto-assigned number that still trips the unique constraint is
// recomputed and re-inserted once. A caller-supplied number is never
// replaced: its conflict surfaces immediately as ErrInvoiceNumberTaken.
func CreateFee(db *sql.DB, fee *models.Fee) error {
	invoiceMu.Lock()
	defer invoiceMu.Unlock()

	candidate := fee.InvoiceNumber
	err := insertFee(db, fee)
	if err != nil && candidate == 0 && isUniqueViolation(err, "") {
		fee.InvoiceNumber = 0
		err = insertFee(db, fee)
	}
	if isUniqueViolation(err, "") {
		return ErrInvoiceNumberTaken
	}
	return err
}

func insertFee(db *sql.DB, fee *models.Fee) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	number, err := NextInvoiceNumber(tx, fee.InvoiceNumber)
	if err != nil {
		return err
	}

	query := `INSERT INTO fees (trainee_name, trainee_id, invoice_number, department, course, payment_type, payment_status, payment_date, amount)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	if err := tx.QueryRow(query,
		fee.TraineeName, fee.TraineeID, number, fee.Department, fee.Course,
		fee.PaymentType, fee.PaymentStatus, fee.PaymentDate, fee.Amount,
	).Scan(&fee.ID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	fee.InvoiceNumber = number
	return nil
}

func GetAllFees(db *sql.DB) ([]*models.Fee, error) {
	query := `SELECT id, COALESCE(trainee_name, ''), COALESCE(trainee_id, ''), invoice_number,
			  COALESCE(department, ''), COALESCE(course, ''), COALESCE(payment_type, ''),
			  COALESCE(payment_status, ''), payment_date, COALESCE(amount, 0)
			  FROM fees ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := []*models.Fee{}
	for rows.Next() {
		f := &models.Fee{}
		if err := rows.Scan(
			&f.ID, &f.TraineeName, &f.TraineeID, &f.InvoiceNumber, &f.Department,
			&f.Course, &f.PaymentType, &f.PaymentStatus, &f.PaymentDate, &f.Amount,
		); err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

func GetFeeByID(db *sql.DB, id int) (*models.Fee, error) {
	f := &models.Fee{}
	query := `SELECT id, COALESCE(trainee_name, ''), COALESCE(trainee_id, ''), invoice_number,
			  COALESCE(department, ''), COALESCE(course, ''), COALESCE(payment_type, ''),
			  COALESCE(payment_status, ''), payment_date, COALESCE(amount, 0)
			  FROM fees WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&f.ID, &f.TraineeName, &f.TraineeID, &f.InvoiceNumber, &f.Department,
		&f.Course, &f.PaymentType, &f.PaymentStatus, &f.PaymentDate, &f.Amount,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return f, nil
}

// UpdateFee overwrites the editable fields. The invoice number is never
// touched after assignment.
func UpdateFee(db *sql.DB, fee *models.Fee) error {
	query := `UPDATE fees
			  SET trainee_name = $1, department = $2, course = $3, amount = $4,
			      payment_date = $5, payment_type = $6, payment_status = $7
			  WHERE id = $8`

	result, err := db.Exec(query,
		fee.TraineeName, fee.Department, fee.Course, fee.Amount,
		fee.PaymentDate, fee.PaymentType, fee.PaymentStatus, fee.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func DeleteFee(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM fees WHERE id = $1`, id)
	return err
}

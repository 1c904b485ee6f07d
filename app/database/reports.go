package database

import "database/sql"

// MonthBucket is a sum grouped by calendar month number. The grouping is
// by month only, not month+year: rows from different years in the same
// calendar month land in the same bucket. That matches the behaviour the
// dashboard has always had.
type MonthBucket struct {
	Month int
	Total int
}

// TotalFeesCollected sums every fee amount; 0 when no fees exist.
func TotalFeesCollected(db *sql.DB) (int, error) {
	var total int
	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM fees`).Scan(&total)
	return total, err
}

// CountTraineesByMonth counts trainees registered in the given calendar
// month, any year. Month numbers outside 1-12 simply match no rows.
func CountTraineesByMonth(db *sql.DB, month int) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM trainees WHERE EXTRACT(MONTH FROM registration_date) = $1`,
		month,
	).Scan(&count)
	return count, err
}

// CountFeesByMonth counts fee payments recorded in the given calendar
// month, any year. The month-over-month comparison works on payment
// events, not amounts.
func CountFeesByMonth(db *sql.DB, month int) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM fees WHERE EXTRACT(MONTH FROM payment_date) = $1`,
		month,
	).Scan(&count)
	return count, err
}

// MonthlyIncomeTotals groups fee amounts by payment month. Order is
// whatever the store produces; callers sort if they need chronology.
func MonthlyIncomeTotals(db *sql.DB) ([]MonthBucket, error) {
	query := `SELECT EXTRACT(MONTH FROM payment_date)::int AS month, SUM(amount)
			  FROM fees GROUP BY month`
	return queryMonthBuckets(db, query)
}

// MonthlyExpenseTotals groups inventory purchase prices by purchase month.
func MonthlyExpenseTotals(db *sql.DB) ([]MonthBucket, error) {
	query := `SELECT EXTRACT(MONTH FROM purchase_date)::int AS month, SUM(price)
			  FROM inventory_items GROUP BY month`
	return queryMonthBuckets(db, query)
}

func queryMonthBuckets(db *sql.DB, query string) ([]MonthBucket, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := []MonthBucket{}
	for rows.Next() {
		var b MonthBucket
		if err := rows.Scan(&b.Month, &b.Total); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// CountAllTrainees, CountAllCourses and CountAllFacilitators feed the
// dashboard headline numbers.
func CountAllTrainees(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM trainees`).Scan(&count)
	return count, err
}

func CountAllCourses(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&count)
	return count, err
}

func CountAllFacilitators(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM facilitators`).Scan(&count)
	return count, err
}

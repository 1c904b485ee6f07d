package dashboard

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
)

// Sentinel texts preserved from the legacy dashboard.
const (
	noTraineesLastMonth = "No Trainees Registered last month"
	noFeesLastMonth     = "No Fees Were Collected last month"

	invalidMonthName = "Invalid Month Number"
)

// percentChangeText formats the month-over-month change. A zero or absent
// last-month figure yields the sentinel instead of a division by zero.
//
// The month arithmetic feeding this never wraps the year: in January the
// "last month" is month 0, which matches no rows, so the sentinel fires
// every January. Long-standing behaviour, kept as is.
func percentChangeText(last, current int, sentinel string) string {
	if last == 0 {
		return sentinel
	}
	change := (float64(current-last) / float64(last)) * 100
	return fmt.Sprintf("%.2f%% increase from last month", change)
}

// monthName maps 1-12 to the English month name; anything else maps to an
// explicit invalid marker rather than failing.
func monthName(n int) string {
	if n < 1 || n > 12 {
		return invalidMonthName
	}
	return time.Month(n).String()
}

func toSeries(buckets []database.MonthBucket) []models.MonthlyTotal {
	series := make([]models.MonthlyTotal, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, models.MonthlyTotal{Month: monthName(b.Month), Total: b.Total})
	}
	return series
}

// buildStats assembles every number the dashboard shows, relative to the
// given reference month (normally the current one).
func buildStats(db *sql.DB, referenceMonth int) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	var err error

	if stats.TotalTrainees, err = database.CountAllTrainees(db); err != nil {
		return nil, err
	}
	if stats.TotalCourses, err = database.CountAllCourses(db); err != nil {
		return nil, err
	}
	if stats.TotalFacilitators, err = database.CountAllFacilitators(db); err != nil {
		return nil, err
	}
	if stats.FeesCollected, err = database.TotalFeesCollected(db); err != nil {
		return nil, err
	}
	if stats.NewTrainees, err = database.CountTraineesByMonth(db, referenceMonth); err != nil {
		return nil, err
	}

	lastMonthTrainees, err := database.CountTraineesByMonth(db, referenceMonth-1)
	if err != nil {
		return nil, err
	}
	stats.TraineeIncrease = percentChangeText(lastMonthTrainees, stats.NewTrainees, noTraineesLastMonth)

	// Fees compare payment counts, not amounts paid.
	lastMonthFees, err := database.CountFeesByMonth(db, referenceMonth-1)
	if err != nil {
		return nil, err
	}
	thisMonthFees, err := database.CountFeesByMonth(db, referenceMonth)
	if err != nil {
		return nil, err
	}
	stats.FeeIncrease = percentChangeText(lastMonthFees, thisMonthFees, noFeesLastMonth)

	income, err := database.MonthlyIncomeTotals(db)
	if err != nil {
		return nil, err
	}
	stats.IncomeData = toSeries(income)

	expense, err := database.MonthlyExpenseTotals(db)
	if err != nil {
		return nil, err
	}
	stats.ExpenseData = toSeries(expense)

	return stats, nil
}

package dashboard

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChangeText(t *testing.T) {
	assert.Equal(t, "50.00% increase from last month", percentChangeText(10, 15, noTraineesLastMonth))
	assert.Equal(t, "-25.00% increase from last month", percentChangeText(20, 15, noTraineesLastMonth))
	assert.Equal(t, "0.00% increase from last month", percentChangeText(10, 10, noTraineesLastMonth))
	assert.Equal(t, noTraineesLastMonth, percentChangeText(0, 15, noTraineesLastMonth))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", monthName(1))
	assert.Equal(t, "December", monthName(12))
	assert.Equal(t, "Invalid Month Number", monthName(0))
	assert.Equal(t, "Invalid Month Number", monthName(13))
}

func TestToSeries(t *testing.T) {
	series := toSeries([]database.MonthBucket{
		{Month: 3, Total: 150},
		{Month: 4, Total: 20},
	})
	assert.Equal(t, []models.MonthlyTotal{
		{Month: "March", Total: 150},
		{Month: "April", Total: 20},
	}, series)
}

// expectStatsQueries scripts the buildStats query sequence. The fee
// figures are payment counts per month.
func expectStatsQueries(mock sqlmock.Sqlmock, month, traineesNow, traineesLast, feesLast, feesNow int) {
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trainees`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM courses`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM facilitators`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM fees`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(900000))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trainees WHERE EXTRACT`).WithArgs(month).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(traineesNow))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trainees WHERE EXTRACT`).WithArgs(month - 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(traineesLast))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM fees WHERE EXTRACT`).WithArgs(month - 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(feesLast))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM fees WHERE EXTRACT`).WithArgs(month).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(feesNow))
	mock.ExpectQuery(`SELECT EXTRACT\(MONTH FROM payment_date\)`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "sum"}).AddRow(3, 150))
	mock.ExpectQuery(`SELECT EXTRACT\(MONTH FROM purchase_date\)`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "sum"}).AddRow(4, 20))
}

func TestBuildStatsWithHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectStatsQueries(mock, 4, 15, 10, 10, 15)

	stats, err := buildStats(db, 4)
	require.NoError(t, err)
	assert.Equal(t, 42, stats.TotalTrainees)
	assert.Equal(t, 7, stats.TotalCourses)
	assert.Equal(t, 5, stats.TotalFacilitators)
	assert.Equal(t, 900000, stats.FeesCollected)
	assert.Equal(t, 15, stats.NewTrainees)
	assert.Equal(t, "50.00% increase from last month", stats.TraineeIncrease)
	assert.Equal(t, "50.00% increase from last month", stats.FeeIncrease)
	assert.Equal(t, []models.MonthlyTotal{{Month: "March", Total: 150}}, stats.IncomeData)
	assert.Equal(t, []models.MonthlyTotal{{Month: "April", Total: 20}}, stats.ExpenseData)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The fee comparison works on payment counts, not amounts: twice as many
// payments this month reads as a 100% increase even when each payment was
// smaller and the collected total went down.
func TestBuildStatsFeeChangeCountsPayments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectStatsQueries(mock, 4, 15, 10, 2, 4)

	stats, err := buildStats(db, 4)
	require.NoError(t, err)
	assert.Equal(t, "100.00% increase from last month", stats.FeeIncrease)
}

func TestBuildStatsEmptyLastMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectStatsQueries(mock, 4, 15, 0, 0, 4)

	stats, err := buildStats(db, 4)
	require.NoError(t, err)
	assert.Equal(t, noTraineesLastMonth, stats.TraineeIncrease)
	assert.Equal(t, noFeesLastMonth, stats.FeeIncrease)
}

// In January the previous month resolves to 0, which matches no rows, so
// both comparisons fall back to their sentinels.
func TestBuildStatsJanuary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectStatsQueries(mock, 1, 3, 0, 0, 2)

	stats, err := buildStats(db, 1)
	require.NoError(t, err)
	assert.Equal(t, noTraineesLastMonth, stats.TraineeIncrease)
	assert.Equal(t, noFeesLastMonth, stats.FeeIncrease)
}

package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalFeesCollectedEmptyStore(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM fees`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	total, err := TotalFeesCollected(db)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestCountFeesByMonth(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM fees WHERE EXTRACT`).WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM fees WHERE EXTRACT`).WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := CountFeesByMonth(db, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = CountFeesByMonth(db, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountTraineesByMonthOutOfRangeMonth(t *testing.T) {
	db, mock := newMockDB(t)

	// December + 1 handled upstream as month 0; it just matches nothing.
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trainees WHERE EXTRACT`).WithArgs(0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := CountTraineesByMonth(db, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMonthlyIncomeTotals(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT EXTRACT\(MONTH FROM payment_date\)::int AS month`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "sum"}).
			AddRow(3, 150).
			AddRow(4, 20))

	buckets, err := MonthlyIncomeTotals(db)
	require.NoError(t, err)
	assert.Equal(t, []MonthBucket{{Month: 3, Total: 150}, {Month: 4, Total: 20}}, buckets)
}

func TestMonthlyExpenseTotalsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT EXTRACT\(MONTH FROM purchase_date\)::int AS month`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "sum"}))

	buckets, err := MonthlyExpenseTotals(db)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

package database

import (
	"database/sql"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lastInvoiceQuery = `SELECT invoice_number FROM fees ORDER BY id DESC LIMIT 1`
	insertFeeQuery   = `INSERT INTO fees`
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestNextInvoiceNumberSeedsEmptyStore(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(lastInvoiceQuery)).WillReturnError(sql.ErrNoRows)

	number, err := NextInvoiceNumber(db, 0)
	require.NoError(t, err)
	assert.Equal(t, InvoiceSeed, number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextInvoiceNumberIncrementsTail(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(lastInvoiceQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"invoice_number"}).AddRow(45790))

	number, err := NextInvoiceNumber(db, 0)
	require.NoError(t, err)
	assert.Equal(t, 45791, number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextInvoiceNumberKeepsCandidate(t *testing.T) {
	db, _ := newMockDB(t)

	// A non-zero candidate never touches the store.
	number, err := NextInvoiceNumber(db, 99001)
	require.NoError(t, err)
	assert.Equal(t, 99001, number)
}

func TestNextInvoiceNumberSeedsOnNullTail(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(lastInvoiceQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"invoice_number"}).AddRow(nil))

	number, err := NextInvoiceNumber(db, 0)
	require.NoError(t, err)
	assert.Equal(t, InvoiceSeed, number)
}

func sampleFee() *models.Fee {
	return &models.Fee{
		TraineeName:   "Aisha Bello",
		TraineeID:     "CED/2024/015",
		Department:    "ICT",
		Course:        "Web Development",
		PaymentType:   "Cash",
		PaymentStatus: "Paid",
		PaymentDate:   time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:        50000,
	}
}

// expectFeeInsert scripts one successful assign+insert transaction. tail
// is the invoice number of the current last fee, or nil for an empty store.
func expectFeeInsert(mock sqlmock.Sqlmock, tail interface{}, id int) {
	mock.ExpectBegin()
	q := mock.ExpectQuery(regexp.QuoteMeta(lastInvoiceQuery))
	if tail == nil {
		q.WillReturnError(sql.ErrNoRows)
	} else {
		q.WillReturnRows(sqlmock.NewRows([]string{"invoice_number"}).AddRow(tail))
	}
	mock.ExpectQuery(insertFeeQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectCommit()
}

func TestCreateFeeAssignsSeedToFirstFee(t *testing.T) {
	db, mock := newMockDB(t)
	expectFeeInsert(mock, nil, 1)

	fee := sampleFee()
	require.NoError(t, CreateFee(db, fee))
	assert.Equal(t, InvoiceSeed, fee.InvoiceNumber)
	assert.Equal(t, 1, fee.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeeConcurrentAssignmentsAreDistinct(t *testing.T) {
	const n = 8
	db, mock := newMockDB(t)

	// The assignment mutex serializes the whole assign+insert step, so the
	// scripted flows run back to back regardless of goroutine scheduling.
	expectFeeInsert(mock, nil, 1)
	for i := 1; i < n; i++ {
		expectFeeInsert(mock, InvoiceSeed+i-1, i+1)
	}

	var wg sync.WaitGroup
	numbers := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fee := sampleFee()
			if err := CreateFee(db, fee); err == nil {
				numbers <- fee.InvoiceNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := map[int]bool{}
	for number := range numbers {
		assert.False(t, seen[number], "invoice number %d assigned twice", number)
		assert.GreaterOrEqual(t, number, InvoiceSeed)
		assert.Less(t, number, InvoiceSeed+n)
		seen[number] = true
	}
	assert.Len(t, seen, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeeRetriesOnceOnUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)

	uniqueErr := &pq.Error{Code: "23505", Constraint: "fees_invoice_number_key"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(lastInvoiceQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"invoice_number"}).AddRow(45800))
	mock.ExpectQuery(insertFeeQuery).WillReturnError(uniqueErr)
	mock.ExpectRollback()

	expectFeeInsert(mock, 45801, 7)

	fee := sampleFee()
	require.NoError(t, CreateFee(db, fee))
	assert.Equal(t, 45802, fee.InvoiceNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeeDoesNotRetryCallerNumbers(t *testing.T) {
	db, mock := newMockDB(t)

	uniqueErr := &pq.Error{Code: "23505", Constraint: "fees_invoice_number_key"}

	mock.ExpectBegin()
	mock.ExpectQuery(insertFeeQuery).WillReturnError(uniqueErr)
	mock.ExpectRollback()

	fee := sampleFee()
	fee.InvoiceNumber = 45800

	err := CreateFee(db, fee)
	assert.ErrorIs(t, err, ErrInvoiceNumberTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
